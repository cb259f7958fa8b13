package handler

import (
	"net/http"
	"strconv"

	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/analytics"
	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/domain"
	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/export"
	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/service"
	"github.com/edvaldo-gutierres/prova-equipe-dados/internal/service/serviceutils"
	"github.com/labstack/echo/v4"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AnalyticsHandler struct {
	svc *service.AnalyticsService
	ref domain.ReferenceQuerier
}

// NewAnalyticsHandler creates the handler. ref may be nil when the relations
// do not come from a database; the compare endpoint then answers 501.
func NewAnalyticsHandler(svc *service.AnalyticsService, ref domain.ReferenceQuerier) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, ref: ref}
}

func (h *AnalyticsHandler) StandingsHandler(c echo.Context) error {
	standings, err := h.svc.Standings(c.Request().Context())
	if err != nil {
		return serviceutils.ResponseError(c, serviceutils.StatusFor(err), "Failed to compute standings", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Standings computed successfully", standings)
}

// SellersResponse is the payload of the qualifying sellers endpoint.
type SellersResponse struct {
	Rule    domain.SellerRule `json:"rule"`
	Sellers []string          `json:"sellers"`
	Details []SellerDetail    `json:"details"`
}

// SellerDetail carries the kept transfer count and total of one seller.
type SellerDetail struct {
	Seller    string `json:"seller"`
	Transfers int    `json:"transfers"`
	Total     string `json:"total"`
}

func (h *AnalyticsHandler) QualifyingSellersHandler(c echo.Context) error {
	rule, err := domain.ParseSellerRule(c.QueryParam("rule"))
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid seller rule", err)
	}
	if c.QueryParam("rule") == "" {
		rule = h.svc.SellerRule()
	}

	sellers, err := h.svc.QualifyingSellers(c.Request().Context(), rule)
	if err != nil {
		return serviceutils.ResponseError(c, serviceutils.StatusFor(err), "Failed to filter sellers", err)
	}

	resp := SellersResponse{Rule: rule, Sellers: analytics.SellerNames(sellers), Details: make([]SellerDetail, len(sellers))}
	for i, s := range sellers {
		resp.Details[i] = SellerDetail{Seller: s.Seller, Transfers: s.Transfers, Total: s.Total.String()}
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Qualifying sellers listed successfully", resp)
}

// ManagersResponse is the payload of the indirect managers endpoint.
type ManagersResponse struct {
	Rule     domain.ManagerRule       `json:"rule"`
	Managers []domain.IndirectManager `json:"managers"`
}

func (h *AnalyticsHandler) IndirectManagersHandler(c echo.Context) error {
	rule, err := domain.ParseManagerRule(c.QueryParam("rule"))
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusBadRequest, "Invalid manager rule", err)
	}
	if c.QueryParam("rule") == "" {
		rule = h.svc.ManagerRule()
	}

	managers, err := h.svc.IndirectManagers(c.Request().Context(), rule)
	if err != nil {
		return serviceutils.ResponseError(c, serviceutils.StatusFor(err), "Failed to resolve indirect managers", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Indirect managers resolved successfully",
		ManagersResponse{Rule: rule, Managers: managers})
}

func (h *AnalyticsHandler) ExportHandler(c echo.Context) error {
	report, err := h.svc.RunAll(c.Request().Context())
	if err != nil {
		return serviceutils.ResponseError(c, serviceutils.StatusFor(err), "Failed to build reports", err)
	}

	data, err := export.Workbook(report)
	if err != nil {
		return serviceutils.ResponseError(c, http.StatusInternalServerError, "Failed to generate excel file", err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="prova_equipe_dados.xlsx"`)
	c.Response().Header().Set(echo.HeaderContentLength, strconv.Itoa(len(data)))
	return c.Blob(http.StatusOK, xlsxContentType, data)
}

func (h *AnalyticsHandler) CompareHandler(c echo.Context) error {
	if h.ref == nil {
		return serviceutils.ResponseError(c, http.StatusNotImplemented, "Reference queries need the postgres source", nil)
	}

	cmp, err := h.svc.Compare(c.Request().Context(), h.ref)
	if err != nil {
		return serviceutils.ResponseError(c, serviceutils.StatusFor(err), "Failed to compare with reference queries", err)
	}
	return serviceutils.ResponseSuccess(c, http.StatusOK, "Comparison finished", cmp)
}
