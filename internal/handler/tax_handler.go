package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taxengine/internal/service"
)

// TaxHandler handles identifier validation and the GST/TDS calculators.
type TaxHandler struct {
	taxService service.TaxService
}

// NewTaxHandler creates a new TaxHandler.
func NewTaxHandler(taxService service.TaxService) *TaxHandler {
	return &TaxHandler{taxService: taxService}
}

// Validate handles POST /api/v1/tax/validate
// @Summary      Validate identifiers
// @Description  Checks GSTIN, PAN, PIN code, mobile, Aadhar, IFSC, state code or HSN values. Send either type/value or a batch in items.
// @Tags         tax
// @Accept       json
// @Produce      json
// @Param        body body ValidateRequest true "Identifiers to check"
// @Success      200 {object} APIResponse{data=ValidationResponse}
// @Failure      400 {object} APIResponse
// @Router       /validate [post]
func (h *TaxHandler) Validate(c *gin.Context) {
	var req ValidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondValidationError(c, err)
		return
	}

	checks := req.Items
	if len(checks) == 0 {
		if req.Type == "" {
			RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "either type and value or items is required")
			return
		}
		checks = []service.IdentifierCheck{{Type: req.Type, Value: req.Value}}
	}

	RespondOK(c, ValidationResponse{Results: h.taxService.ValidateIdentifiers(checks)})
}

// GST handles POST /api/v1/tax/gst
// @Summary      Calculate GST
// @Description  Splits the rate into CGST+SGST or IGST depending on the two state codes and computes each amount
// @Tags         tax
// @Accept       json
// @Produce      json
// @Param        body body GSTRequest true "Calculation input"
// @Success      200 {object} APIResponse{data=service.GSTResult}
// @Failure      400 {object} APIResponse
// @Router       /gst [post]
func (h *TaxHandler) GST(c *gin.Context) {
	var req GSTRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondValidationError(c, err)
		return
	}

	RespondOK(c, h.taxService.CalculateGST(service.GSTInput{
		TaxableAmount:     req.TaxableAmount,
		GSTRate:           req.GSTRate,
		CessRate:          req.CessRate,
		SupplierStateCode: req.SupplierStateCode,
		CustomerStateCode: req.CustomerStateCode,
	}))
}

// TDS handles POST /api/v1/tax/tds
// @Summary      Calculate TDS
// @Description  Applies the section rate when the amount exceeds the section threshold
// @Tags         tax
// @Accept       json
// @Produce      json
// @Param        body body TDSRequest true "Amount and section"
// @Success      200 {object} APIResponse{data=tds.Result}
// @Failure      400 {object} APIResponse
// @Router       /tds [post]
func (h *TaxHandler) TDS(c *gin.Context) {
	var req TDSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondValidationError(c, err)
		return
	}

	RespondOK(c, h.taxService.CalculateTDS(req.Amount, req.Section))
}

// TDSSections handles GET /api/v1/tax/tds/sections
// @Summary      List TDS sections
// @Tags         tax
// @Produce      json
// @Success      200 {object} APIResponse{data=[]tds.TDSRecord}
// @Router       /tds/sections [get]
func (h *TaxHandler) TDSSections(c *gin.Context) {
	RespondOK(c, h.taxService.TDSSections())
}
