package myhttp

import (
	"net/http"

	"github.com/gagliardetto/solana-go"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/slackernews/paygate/iservices"
	"github.com/slackernews/paygate/prototype"
)

type BuildRequest struct {
	UserAddress   string `json:"userAddress" binding:"required"`
	AuthorAddress string `json:"authorAddress"`
}

type SubmitRequest struct {
	Transaction string `json:"transaction" binding:"required"`
}

type TransactionResponse struct {
	Transaction          string          `json:"transaction"`
	Type                 string          `json:"type"`
	Quote                prototype.Quote `json:"quote"`
	Decimals             uint8           `json:"decimals"`
	FeePayer             string          `json:"feePayer"`
	MissingSigners       []string        `json:"missingSigners"`
	Blockhash            string          `json:"blockhash"`
	LastValidBlockHeight uint64          `json:"lastValidBlockHeight"`
}

type ResultResponse struct {
	Signature   string `json:"signature"`
	Status      string `json:"status"`
	Paid        bool   `json:"paid"`
	Commitment  string `json:"commitment,omitempty"`
	Slot        uint64 `json:"slot,omitempty"`
	LedgerError string `json:"ledgerError,omitempty"`
	Error       string `json:"error,omitempty"`
}

type BalanceResponse struct {
	prototype.Balance
	Display string `json:"display"`
}

type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

type handlers struct {
	gate iservices.IPayGate
}

func registerRoutes(r gin.IRouter, gate iservices.IPayGate) {
	h := &handlers{gate: gate}
	r.GET("/healthz", h.health)
	v1 := r.Group("/v1")
	v1.POST("/transactions/post", h.buildPost)
	v1.POST("/transactions/comment", h.buildInteraction(prototype.InteractionComment))
	v1.POST("/transactions/upvote", h.buildInteraction(prototype.InteractionUpvote))
	v1.POST("/transactions/submit", h.submit)
	v1.GET("/transactions/:signature", h.status)
	v1.GET("/balance/:address", h.balance)
}

func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handlers) buildPost(c *gin.Context) {
	var req BuildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, errors.Wrap(prototype.ErrInvalidAddress, err.Error()))
		return
	}
	user, err := prototype.ParseAddress(req.UserAddress)
	if err != nil {
		fail(c, err)
		return
	}
	ptx, err := h.gate.BuildPostTransaction(c.Request.Context(), user)
	if err != nil {
		fail(c, err)
		return
	}
	respondTransaction(c, ptx)
}

func (h *handlers) buildInteraction(t prototype.InteractionType) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req BuildRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			fail(c, errors.Wrap(prototype.ErrInvalidAddress, err.Error()))
			return
		}
		user, err := prototype.ParseAddress(req.UserAddress)
		if err != nil {
			fail(c, err)
			return
		}
		if req.AuthorAddress == "" {
			fail(c, errors.Wrapf(prototype.ErrMissingAuthor, "%s", t))
			return
		}
		author, err := prototype.ParseAddress(req.AuthorAddress)
		if err != nil {
			fail(c, err)
			return
		}
		ptx, err := h.gate.BuildInteractionTransaction(c.Request.Context(), t, user, author)
		if err != nil {
			fail(c, err)
			return
		}
		respondTransaction(c, ptx)
	}
}

func respondTransaction(c *gin.Context, ptx *prototype.PartialTransaction) {
	encoded, err := ptx.Base64()
	if err != nil {
		fail(c, err)
		return
	}
	missing := make([]string, 0, 1)
	for _, k := range ptx.MissingSigners() {
		missing = append(missing, k.String())
	}
	var decimals uint8
	for _, ix := range ptx.Instructions {
		if t, ok := ix.(*prototype.TransferChecked); ok {
			decimals = t.Decimals
			break
		}
	}
	c.JSON(http.StatusOK, TransactionResponse{
		Transaction:          encoded,
		Type:                 ptx.Type.String(),
		Quote:                ptx.Quote,
		Decimals:             decimals,
		FeePayer:             ptx.FeePayer.String(),
		MissingSigners:       missing,
		Blockhash:            ptx.Checkpoint.Blockhash.String(),
		LastValidBlockHeight: ptx.Checkpoint.LastValidBlockHeight,
	})
}

func (h *handlers) submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, errors.Wrap(prototype.ErrMalformedTransaction, err.Error()))
		return
	}
	res, err := h.gate.SubmitEncoded(c.Request.Context(), req.Transaction)
	if res == nil {
		fail(c, err)
		return
	}
	c.JSON(statusCode(err), toResultResponse(res))
}

func (h *handlers) status(c *gin.Context) {
	sig, err := solana.SignatureFromBase58(c.Param("signature"))
	if err != nil {
		fail(c, errors.Wrapf(prototype.ErrInvalidAddress, "signature: %v", err))
		return
	}
	res, err := h.gate.Status(c.Request.Context(), sig)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toResultResponse(res))
}

func (h *handlers) balance(c *gin.Context) {
	owner, err := prototype.ParseAddress(c.Param("address"))
	if err != nil {
		fail(c, err)
		return
	}
	b, err := h.gate.Balance(c.Request.Context(), owner)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, BalanceResponse{Balance: *b, Display: b.UiAmount()})
}

func toResultResponse(res *prototype.SubmissionResult) ResultResponse {
	out := ResultResponse{
		Signature:   res.Signature.String(),
		Status:      res.Status.String(),
		Paid:        res.Paid(),
		Commitment:  string(res.Commitment),
		Slot:        res.Slot,
		LedgerError: res.LedgerError,
	}
	if res.Err != nil {
		out.Error = res.Err.Error()
	}
	return out
}

func fail(c *gin.Context, err error) {
	c.AbortWithStatusJSON(statusCode(err), ErrorResponse{
		Error:     err.Error(),
		RequestID: c.GetString(requestIDKey),
	})
}

func statusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, prototype.ErrInvalidAddress),
		errors.Is(err, prototype.ErrMissingAuthor),
		errors.Is(err, prototype.ErrUnknownInteraction),
		errors.Is(err, prototype.ErrMalformedTransaction),
		errors.Is(err, prototype.ErrIncompleteSignature):
		return http.StatusBadRequest
	case errors.Is(err, prototype.ErrEmptyWallet):
		return http.StatusPaymentRequired
	case errors.Is(err, prototype.ErrUnknownSignature):
		return http.StatusNotFound
	case errors.Is(err, prototype.ErrDuplicateSubmission),
		errors.Is(err, prototype.ErrOwnerMismatch):
		return http.StatusConflict
	case errors.Is(err, prototype.ErrLedgerExecution),
		errors.Is(err, prototype.ErrBroadcastRejected):
		return http.StatusUnprocessableEntity
	case errors.Is(err, prototype.ErrConfirmationTimeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
