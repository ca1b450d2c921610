package receipts

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	mdshared "github.com/agrilog/agrilog/internal/masterdata/shared"
	"github.com/agrilog/agrilog/internal/platform/httpx"
	"github.com/agrilog/agrilog/internal/shared"
)

const idempotencyModule = "receipts"

type Handler struct {
	logger      *slog.Logger
	service     *Service
	idempotency *shared.IdempotencyStore
}

func NewHandler(logger *slog.Logger, service *Service, idempotency *shared.IdempotencyStore) *Handler {
	return &Handler{logger: logger, service: service, idempotency: idempotency}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	receipts, err := h.service.List(r.Context(), mdshared.FiltersFromRequest(r))
	if err != nil {
		h.logger.Error("list receipts failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, receipts)
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, shared.ErrNotFound)
		return
	}
	receipt, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.logger.Warn("get receipt failed", "error", err, "id", id)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, receipt)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request) (ReceiptInput, bool) {
	var input ReceiptInput
	if err := httpx.DecodeJSON(r, &input); err != nil {
		httpx.RespondError(w, err)
		return input, false
	}
	if err := httpx.Validate(input); err != nil {
		httpx.RespondError(w, err)
		return input, false
	}
	return input, true
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decode(w, r)
	if !ok {
		return
	}

	key := r.Header.Get("Idempotency-Key")
	if err := h.idempotency.CheckAndInsert(r.Context(), key, idempotencyModule); err != nil {
		httpx.RespondError(w, err)
		return
	}

	created, err := h.service.Create(r.Context(), input)
	if err != nil {
		_ = h.idempotency.Delete(r.Context(), key, idempotencyModule)
		h.logger.Warn("create receipt failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	h.logger.Info("receipt created", "id", created.ID, "lot_code", created.LotCode, "total_price", created.TotalPrice)
	httpx.JSON(w, http.StatusCreated, created)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, shared.ErrNotFound)
		return
	}
	input, ok := h.decode(w, r)
	if !ok {
		return
	}
	updated, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		h.logger.Warn("update receipt failed", "error", err, "id", id)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, updated)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, shared.ErrNotFound)
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Error("delete receipt failed", "error", err, "id", id)
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, httpx.Message{Message: "receipt deleted"})
}

// Preview returns the derived values and lot code for a draft receipt.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	input, ok := h.decode(w, r)
	if !ok {
		return
	}
	preview, err := h.service.Preview(r.Context(), input)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, preview)
}

// NextLot handles GET /lot?productId=&arrivalDate=.
func (h *Handler) NextLot(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	v := &shared.ValidationError{}
	productID := parseRef(v, "productId", q.Get("productId"))
	day, err := shared.ParseDate(q.Get("arrivalDate"))
	if err != nil {
		v.Add("arrivalDate", "%v", err)
	}
	if err := v.OrNil(); err != nil {
		httpx.RespondError(w, err)
		return
	}
	code, err := h.service.NextLotCode(r.Context(), productID, day)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"lotCode": code})
}

// Export streams the filtered receipt list as an XLSX workbook.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	receipts, err := h.service.List(r.Context(), mdshared.FiltersFromRequest(r))
	if err != nil {
		h.logger.Error("export receipts failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	f, err := BuildWorkbook(receipts)
	if err != nil {
		h.logger.Error("build receipts workbook failed", "error", err)
		httpx.RespondError(w, err)
		return
	}
	defer f.Close()

	filename := "conferimenti_" + time.Now().Format("20060102") + ".xlsx"
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if err := f.Write(w); err != nil {
		h.logger.Error("write receipts workbook failed", "error", err)
	}
}
