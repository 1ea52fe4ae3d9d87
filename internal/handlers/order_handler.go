package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gleamhub/carwash-booking/internal/audit"
	domain "github.com/gleamhub/carwash-booking/internal/domain/order"
	"github.com/gleamhub/carwash-booking/internal/httperr"
	"github.com/gleamhub/carwash-booking/internal/httpresp"
	"github.com/gleamhub/carwash-booking/internal/payment"
	"github.com/gleamhub/carwash-booking/internal/pdf"
	"github.com/gleamhub/carwash-booking/internal/timezone"
	ucorder "github.com/gleamhub/carwash-booking/internal/usecase/order"
	"github.com/gleamhub/carwash-booking/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type OrderHandler struct {
	repo domain.Repository

	createUC *ucorder.CreateOrder
	slotsUC  *ucorder.BookedSlots
	verifyUC *ucorder.VerifyPayment
	updateUC *ucorder.UpdateOrder
	exportUC *ucorder.ExportCSV

	gateway *payment.Gateway
	audit   *audit.Dispatcher
	tz      string
}

func NewOrderHandler(
	repo domain.Repository,
	createUC *ucorder.CreateOrder,
	slotsUC *ucorder.BookedSlots,
	verifyUC *ucorder.VerifyPayment,
	updateUC *ucorder.UpdateOrder,
	exportUC *ucorder.ExportCSV,
	gateway *payment.Gateway,
	auditDispatcher *audit.Dispatcher,
	tz string,
) *OrderHandler {
	return &OrderHandler{
		repo:     repo,
		createUC: createUC,
		slotsUC:  slotsUC,
		verifyUC: verifyUC,
		updateUC: updateUC,
		exportUC: exportUC,
		gateway:  gateway,
		audit:    auditDispatcher,
		tz:       tz,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CarDetailsRequest struct {
	Make  string `json:"make" binding:"required"`
	Model string `json:"model" binding:"required"`
	Year  string `json:"year"`
	Plate string `json:"plate"`
}

type CreateOrderRequest struct {
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone" binding:"required"`

	CarDetails CarDetailsRequest `json:"carDetails" binding:"required"`

	// carModelId points at the catalog entry the customer picked in the
	// booking flow; segment is the fallback for unknown cars.
	CarModelID uint   `json:"carModelId"`
	Segment    string `json:"segment"`

	ServiceID uint `json:"serviceId" binding:"required"`

	// amount is display-only; the server resolves the charged price.
	Amount float64 `json:"amount"`

	AppointmentDate string `json:"appointmentDate" binding:"required"`
	AppointmentTime string `json:"appointmentTime" binding:"required"`

	Address string `json:"address" binding:"required"`
	City    string `json:"city" binding:"required"`

	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

type UpdateOrderRequest struct {
	Status        *string `json:"status,omitempty"`
	PaymentStatus *string `json:"paymentStatus,omitempty"`
	Notes         *string `json:"notes,omitempty"`
}

type CreateGatewayOrderRequest struct {
	Amount  float64 `json:"amount" binding:"required"`
	Receipt string  `json:"receipt"`
}

type VerifyPaymentRequest struct {
	OrderID           uint   `json:"orderId"`
	RazorpayOrderID   string `json:"razorpayOrderId" binding:"required"`
	RazorpayPaymentID string `json:"razorpayPaymentId" binding:"required"`
	RazorpaySignature string `json:"razorpaySignature" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing or invalid booking fields.")
		return
	}

	if req.CustomerEmail != "" && !validators.IsEmailDomainValid(req.CustomerEmail) {
		httperr.BadRequest(c, "invalid_email_domain", "The email domain does not look valid.")
		return
	}

	o, err := h.createUC.Execute(c.Request.Context(), ucorder.CreateOrderInput{
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		CarMake:       req.CarDetails.Make,
		CarModel:      req.CarDetails.Model,
		CarYear:       req.CarDetails.Year,
		CarPlate:      req.CarDetails.Plate,
		CarModelID:    req.CarModelID,
		Segment:       req.Segment,
		ServiceID:     req.ServiceID,
		QuotedAmount:  req.Amount,
		Date:          req.AppointmentDate,
		Time:          req.AppointmentTime,
		Address:       req.Address,
		City:          req.City,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		h.mapOrderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, o)
}

// ======================================================
// SLOTS
// ======================================================

func (h *OrderHandler) Slots(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	booked, err := h.slotsUC.Execute(c.Request.Context(), dateStr)
	if err != nil {
		h.mapOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":        dateStr,
		"slots":       domain.TimeSlots,
		"bookedSlots": booked,
	})
}

// ======================================================
// LIST / UPDATE
// ======================================================

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.repo.ListAll(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_orders", "Could not load orders.")
		return
	}
	httpresp.OK(c, orders)
}

func (h *OrderHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_order_id", "Order id must be numeric.")
		return
	}

	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid update payload.")
		return
	}

	o, err := h.updateUC.Execute(c.Request.Context(), actorEmail(c), ucorder.UpdateOrderInput{
		ID:            uint(id),
		Status:        req.Status,
		PaymentStatus: req.PaymentStatus,
		Notes:         req.Notes,
	})
	if err != nil {
		h.mapOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, o)
}

// ======================================================
// CSV EXPORT
// ======================================================

func (h *OrderHandler) ExportCSV(c *gin.Context) {
	var start, end *time.Time
	loc := timezone.Location(h.tz)

	if s := c.Query("startDate"); s != "" {
		t, err := time.ParseInLocation("2006-01-02", s, loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_start_date", "startDate must be YYYY-MM-DD.")
			return
		}
		start = &t
	}
	if s := c.Query("endDate"); s != "" {
		t, err := time.ParseInLocation("2006-01-02", s, loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_end_date", "endDate must be YYYY-MM-DD.")
			return
		}
		// inclusive end of day
		t = t.AddDate(0, 0, 1).Add(-time.Millisecond)
		end = &t
	}

	data, err := h.exportUC.Execute(c.Request.Context(), start, end)
	if err != nil {
		httperr.Internal(c, "failed_to_export_orders", "Could not export orders.")
		return
	}

	filename := fmt.Sprintf("orders-%s.csv", timezone.NowIn(h.tz).Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", data)
}

// ======================================================
// BULK CLEAR
// ======================================================

func (h *OrderHandler) DeleteAll(c *gin.Context) {
	deleted, err := h.repo.DeleteAll(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_delete_orders", "Could not clear orders.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorEmail: actorEmail(c),
		Action:     "orders_cleared",
		Entity:     "order",
		Metadata:   map[string]any{"deleted": deleted},
	})

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// ======================================================
// INVOICE
// ======================================================

func (h *OrderHandler) Invoice(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_order_id", "Order id must be numeric.")
		return
	}

	o, err := h.repo.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		httperr.NotFound(c, "order_not_found", "Order not found.")
		return
	}

	data, err := pdf.BuildInvoice(o)
	if err != nil {
		httperr.Internal(c, "failed_to_build_invoice", "Could not render the invoice.")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("invoice-%d.pdf", o.ID)))
	c.Data(http.StatusOK, "application/pdf", data)
}

// ======================================================
// PAYMENT GATEWAY
// ======================================================

func (h *OrderHandler) CreateGatewayOrder(c *gin.Context) {
	var req CreateGatewayOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Amount is required.")
		return
	}

	receipt := req.Receipt
	if receipt == "" {
		receipt = "rcpt-" + uuid.NewString()[:13]
	}

	gwOrder, err := h.gateway.CreateOrder(req.Amount, receipt)
	if err != nil {
		if httperr.IsBusiness(err, "payment_gateway_not_configured") {
			httperr.Internal(c, "payment_gateway_not_configured", "Online payments are not configured.")
			return
		}
		// surface the gateway's own message; clients show it verbatim
		httperr.Internal(c, "gateway_order_failed", err.Error())
		return
	}

	// checkout.js needs the public key alongside the gateway order
	gwOrder["keyId"] = h.gateway.KeyID()

	c.JSON(http.StatusOK, gwOrder)
}

func (h *OrderHandler) VerifyPayment(c *gin.Context) {
	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing payment verification fields.")
		return
	}

	o, err := h.verifyUC.Execute(c.Request.Context(), ucorder.VerifyPaymentInput{
		OrderID:           req.OrderID,
		RazorpayOrderID:   req.RazorpayOrderID,
		RazorpayPaymentID: req.RazorpayPaymentID,
		Signature:         req.RazorpaySignature,
	})
	if err != nil {
		h.mapOrderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"verified": true,
		"order":    o,
	})
}

// ======================================================
// ERROR MAPPING
// ======================================================

func (h *OrderHandler) mapOrderError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "slot_already_booked"):
		httperr.Conflict(c, "slot_already_booked", "This time slot has just been taken. Please pick another.")
	case httperr.IsBusiness(err, "invalid_time_slot"):
		httperr.BadRequest(c, "invalid_time_slot", "The appointment time is not one of the offered slots.")
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
	case httperr.IsBusiness(err, "invalid_payment_method"):
		httperr.BadRequest(c, "invalid_payment_method", "Payment method must be Razorpay or COD.")
	case httperr.IsBusiness(err, "service_not_found"):
		httperr.BadRequest(c, "service_not_found", "The selected service does not exist.")
	case httperr.IsBusiness(err, "car_model_not_found"):
		httperr.BadRequest(c, "car_model_not_found", "The selected car model does not exist.")
	case httperr.IsBusiness(err, "order_not_found"):
		httperr.NotFound(c, "order_not_found", "Order not found.")
	case httperr.IsBusiness(err, "invalid_status"),
		httperr.IsBusiness(err, "invalid_payment_status"),
		httperr.IsBusiness(err, "invalid_status_transition"):
		httperr.BadRequest(c, "invalid_status_transition", "The requested status change is not allowed.")
	case httperr.IsBusiness(err, "signature_verification_failed"):
		httperr.BadRequest(c, "payment_verification_failed", "Payment signature did not verify.")
	default:
		httperr.Internal(c, "order_operation_failed", "Something went wrong. Please try again.")
	}
}
