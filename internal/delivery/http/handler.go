package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/qrbill-ch/qrbill/internal/codec"
	"github.com/qrbill-ch/qrbill/internal/domain/bill"
	"github.com/qrbill-ch/qrbill/internal/usecase/decodebill"
	"github.com/qrbill-ch/qrbill/internal/usecase/generatebill"
	"github.com/qrbill-ch/qrbill/internal/validation"
)

type Handler struct {
	generateUC *generatebill.UseCase
	decodeUC   *decodebill.UseCase
}

func NewHandler(generateUC *generatebill.UseCase, decodeUC *decodebill.UseCase) *Handler {
	return &Handler{
		generateUC: generateUC,
		decodeUC:   decodeUC,
	}
}

type ValidateResponse struct {
	Valid  bool               `json:"valid"`
	Issues []validation.Issue `json:"issues"`
}

type EncodeResponse struct {
	BillID  string `json:"bill_id"`
	Payload string `json:"payload"`
}

type DecodeRequest struct {
	Payload string `json:"payload"`
}

type errorResponse struct {
	Error  string             `json:"error"`
	Issues []validation.Issue `json:"issues,omitempty"`
}

// HandleValidate runs the field validator and reports every issue found, so
// a form can surface all problems from one request.
func (h *Handler) HandleValidate(w http.ResponseWriter, r *http.Request) {
	b, ok := h.decodeBill(w, r)
	if !ok {
		return
	}

	res := validation.Validate(b)
	if !res.OK() {
		validationFailures.Inc()
	}
	writeJSON(w, http.StatusOK, ValidateResponse{Valid: res.OK(), Issues: res.Issues})
}

// HandleEncode validates and encodes a bill into payload text.
func (h *Handler) HandleEncode(w http.ResponseWriter, r *http.Request) {
	b, ok := h.decodeBill(w, r)
	if !ok {
		return
	}

	resp, err := h.generateUC.Execute(generatebill.Request{Bill: b})
	if err != nil {
		h.writeError(w, err)
		return
	}

	billsEncoded.Inc()
	writeJSON(w, http.StatusOK, EncodeResponse{BillID: resp.BillID, Payload: resp.Payload})
}

// HandleDecode parses scanned payload text back into a bill.
func (h *Handler) HandleDecode(w http.ResponseWriter, r *http.Request) {
	var req DecodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
		return
	}

	resp, err := h.decodeUC.Execute(decodebill.Request{Payload: req.Payload})
	if err != nil {
		h.writeError(w, err)
		return
	}

	billsDecoded.Inc()
	writeJSON(w, http.StatusOK, fromDomain(resp.Bill))
}

// HandleQR validates, encodes and renders the bill's QR symbol as PNG.
func (h *Handler) HandleQR(w http.ResponseWriter, r *http.Request) {
	b, ok := h.decodeBill(w, r)
	if !ok {
		return
	}

	resp, err := h.generateUC.Execute(generatebill.Request{Bill: b})
	if err != nil {
		h.writeError(w, err)
		return
	}

	billsEncoded.Inc()
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Bill-Id", resp.BillID)
	_, _ = w.Write(resp.PNG)
}

func (h *Handler) decodeBill(w http.ResponseWriter, r *http.Request) (*bill.Bill, bool) {
	var dto BillDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
		return nil, false
	}
	b, err := dto.toDomain()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return nil, false
	}
	return b, true
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var valErr *validation.Error
	switch {
	case errors.As(err, &valErr):
		validationFailures.Inc()
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:  "bill validation failed",
			Issues: valErr.Result.Issues,
		})
	case errors.Is(err, codec.ErrInvalidPayload):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case errors.Is(err, codec.ErrEncoding):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	default:
		slog.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
