package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"keymarket/internal/identity"
	"keymarket/internal/listing"
	"keymarket/internal/purchase"
	"keymarket/internal/signing"
	"keymarket/pkg/errors"
	"keymarket/pkg/logger"
)

// Handler is the thin JSON surface over the marketplace usecases. No
// rendering, no sessions; authentication beyond credential checks lives in
// the surrounding deployment.
type Handler struct {
	accounts  identity.AccountUsecase
	services  listing.ServiceUsecase
	purchases purchase.PurchaseUsecase
	signing   signing.SignatureRequestUsecase
	logger    logger.Logger
}

func NewHandler(
	accounts identity.AccountUsecase,
	services listing.ServiceUsecase,
	purchases purchase.PurchaseUsecase,
	signingUC signing.SignatureRequestUsecase,
	log logger.Logger,
) *Handler {
	return &Handler{
		accounts:  accounts,
		services:  services,
		purchases: purchases,
		signing:   signingUC,
		logger:    log,
	}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /accounts", h.handleRegister)
	mux.HandleFunc("POST /login", h.handleLogin)

	mux.HandleFunc("POST /services", h.handlePublishService)
	mux.HandleFunc("GET /services/{id}", h.handleGetService)
	mux.HandleFunc("PATCH /services/{id}", h.handleUpdateTerms)
	mux.HandleFunc("DELETE /services/{id}", h.handleUnlistService)
	mux.HandleFunc("GET /providers/{id}/services", h.handleListProviderServices)

	mux.HandleFunc("POST /purchases", h.handleInitiatePurchase)
	mux.HandleFunc("POST /purchases/{paymentRef}/activate", h.handleActivatePurchase)

	mux.HandleFunc("POST /signature-requests", h.handleCreateRequest)
	mux.HandleFunc("GET /signature-requests/{id}", h.handleGetRequest)
	mux.HandleFunc("GET /signature-requests/{id}/eligibility", h.handleCheckEligibility)
	mux.HandleFunc("POST /signature-requests/{id}/sign", h.handleSignRequest)
	mux.HandleFunc("POST /signature-requests/{id}/finalize", h.handleFinalizeRequest)
	mux.HandleFunc("POST /signature-requests/{id}/reject", h.handleRejectRequest)
	mux.HandleFunc("GET /clients/{id}/signature-requests", h.handleListClientRequests)
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !h.decode(w, r, &req) {
		return
	}

	account, err := h.accounts.Register(r.Context(), identity.RegisterCommand{
		Username:   req.Username,
		Credential: req.Credential,
		Role:       req.Role,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, account)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.decode(w, r, &req) {
		return
	}

	account, err := h.accounts.Authenticate(r.Context(), req.Username, req.Credential)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, account)
}

func (h *Handler) handlePublishService(w http.ResponseWriter, r *http.Request) {
	var req PublishServiceRequest
	if !h.decode(w, r, &req) {
		return
	}

	service, err := h.services.Publish(r.Context(), listing.PublishCommand{
		ProviderID:          req.ProviderID,
		PolicyType:          req.PolicyType,
		MasterFingerprint:   req.MasterFingerprint,
		DerivationPath:      req.DerivationPath,
		Xpub:                req.Xpub,
		ActivationFeeSats:   req.ActivationFeeSats,
		PerSignatureFeeSats: req.PerSignatureFeeSats,
		LightningEndpoint:   req.LightningEndpoint,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, service)
}

func (h *Handler) handleGetService(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	service, err := h.services.GetService(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, service)
}

func (h *Handler) handleUpdateTerms(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	var req UpdateTermsRequest
	if !h.decode(w, r, &req) {
		return
	}

	service, err := h.services.UpdateTerms(r.Context(), listing.UpdateTermsCommand{
		ServiceID:           id,
		ProviderID:          req.ProviderID,
		PolicyType:          req.PolicyType,
		ActivationFeeSats:   req.ActivationFeeSats,
		PerSignatureFeeSats: req.PerSignatureFeeSats,
		LightningEndpoint:   req.LightningEndpoint,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, service)
}

func (h *Handler) handleUnlistService(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}
	providerID, err := uuid.Parse(r.URL.Query().Get("provider_id"))
	if err != nil {
		h.writeError(w, errors.InvalidArg("provider_id must be a valid id"))
		return
	}

	if err := h.services.Unlist(r.Context(), id, providerID); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleListProviderServices(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	services, err := h.services.ListByProvider(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, services)
}

func (h *Handler) handleInitiatePurchase(w http.ResponseWriter, r *http.Request) {
	var req InitiatePurchaseRequest
	if !h.decode(w, r, &req) {
		return
	}

	p, err := h.purchases.Initiate(r.Context(), purchase.InitiateCommand{
		ClientID:  req.ClientID,
		ServiceID: req.ServiceID,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, p)
}

func (h *Handler) handleActivatePurchase(w http.ResponseWriter, r *http.Request) {
	paymentRef := r.PathValue("paymentRef")

	activation, err := h.purchases.Activate(r.Context(), paymentRef)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, activation)
}

func (h *Handler) handleCreateRequest(w http.ResponseWriter, r *http.Request) {
	var req CreateSignatureRequest
	if !h.decode(w, r, &req) {
		return
	}

	dto, err := h.signing.Create(r.Context(), signing.CreateCommand{
		ClientID:  req.ClientID,
		ServiceID: req.ServiceID,
		PsbtData:  req.PsbtData,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, dto)
}

func (h *Handler) handleGetRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	dto, err := h.signing.GetRequest(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, dto)
}

func (h *Handler) handleCheckEligibility(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	elig, err := h.signing.CheckEligibility(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, elig)
}

func (h *Handler) handleSignRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	var req SignRequest
	if !h.decode(w, r, &req) {
		return
	}

	dto, err := h.signing.Sign(r.Context(), id, req.SignedPsbt)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, dto)
}

func (h *Handler) handleFinalizeRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	dto, err := h.signing.Finalize(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, dto)
}

func (h *Handler) handleRejectRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	dto, err := h.signing.Reject(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, dto)
}

func (h *Handler) handleListClientRequests(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	dtos, err := h.signing.ListByClient(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, dtos)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeError(w, errors.InvalidArg("invalid JSON body"))
		return false
	}
	return true
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request, key string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(key))
	if err != nil {
		h.writeError(w, errors.InvalidArg(key+" must be a valid id"))
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", "err", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	code := errors.CodeOf(err)
	status := statusOf(code)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", "code", code, "err", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"code":    string(code),
		"message": err.Error(),
	})
}

func statusOf(code errors.Code) int {
	switch code {
	case errors.CodeInvalidArgument:
		return http.StatusBadRequest
	case errors.CodeNotFound:
		return http.StatusNotFound
	case errors.CodeAlreadyExists:
		return http.StatusConflict
	case errors.CodeFailedPrecondition:
		return http.StatusPreconditionFailed
	case errors.CodeUnauthenticated:
		return http.StatusUnauthorized
	case errors.CodePermissionDenied:
		return http.StatusForbidden
	case errors.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
