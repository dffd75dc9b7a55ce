// Package transport exposes the bridge command surface over REST and provides the
// matching HTTP client used by the agents.
package transport

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/btcbridge-backend/internal/bridge/model"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
)

const maxBodySize = 4 << 20

// Handler serves the bridge REST API.
type Handler struct {
	bridge     Bridge
	tokens     Tokens
	adminToken string
	marshaler  gwruntime.Marshaler
	logger     *zap.Logger
}

// NewHandler returns a Handler. An empty adminToken disables the admin routes.
func NewHandler(bridge Bridge, tokens Tokens, adminToken string, logger *zap.Logger) (*Handler, error) {
	if bridge == nil {
		return nil, errors.New("bridge is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		bridge:     bridge,
		tokens:     tokens,
		adminToken: adminToken,
		marshaler:  &gwruntime.JSONBuiltin{},
		logger:     logger,
	}, nil
}

type route struct {
	method  string
	pattern string
	handle  func(r *http.Request, params map[string]string) (any, error)
}

// Register mounts every route on mux.
func (h *Handler) Register(mux *gwruntime.ServeMux) error {
	routes := []route{
		{http.MethodPost, "/v1/blocks/{height}/{hash}/buffer", h.account(h.announceBlock)},
		{http.MethodGet, "/v1/blocks/{height}/{hash}/buffer", h.account(h.buffer)},
		{http.MethodDelete, "/v1/blocks/{height}/{hash}/buffer", h.account(h.deleteBuffer)},
		{http.MethodPut, "/v1/blocks/{height}/{hash}/chunks/{chunk}", h.account(h.pushChunk)},
		{http.MethodDelete, "/v1/blocks/{height}/{hash}/chunks/{chunk}", h.account(h.deleteChunk)},
		{http.MethodPost, "/v1/blocks/{height}/{hash}/verify", h.account(h.verify)},
		{http.MethodPost, "/v1/blocks/{height}/{hash}/endorse", h.account(h.endorse)},
		{http.MethodGet, "/v1/blocks/{height}/{hash}/endorsement", h.endorsement},
		{http.MethodGet, "/v1/consensus/{height}", h.consensusBlocks},
		{http.MethodPost, "/v1/chain/advance", h.account(h.advance)},
		{http.MethodGet, "/v1/chain", h.chainState},
		{http.MethodGet, "/v1/irreversible/{height}", h.irreversibleBlock},
		{http.MethodGet, "/v1/utxos/{txid}/{index}", h.utxo},
		{http.MethodPost, "/v1/fees/deposit", h.account(h.deposit)},
		{http.MethodPost, "/v1/fees/withdraw", h.account(h.withdraw)},
		{http.MethodGet, "/v1/fees", h.account(h.feeBalance)},
		{http.MethodPost, "/v1/synchronizers", h.account(h.registerSynchronizer)},
		{http.MethodPost, "/v1/synchronizers/{receiver}/slots", h.account(h.buySlots)},
		{http.MethodGet, "/v1/synchronizers/{account}", h.synchronizer},
		{http.MethodGet, "/v1/rewards", h.account(h.rewardBalance)},
		{http.MethodPost, "/v1/rewards/claim", h.account(h.claimReward)},
		{http.MethodGet, "/v1/rewards/{height}", h.rewardLog},
		{http.MethodPost, "/v1/admin/bootstrap", h.admin(h.bootstrap)},
		{http.MethodPut, "/v1/admin/stakes/{account}", h.admin(h.setStake)},
		{http.MethodDelete, "/v1/admin/{kind}/{height}", h.admin(h.purge)},
	}
	for _, rt := range routes {
		if err := mux.HandlePath(rt.method, rt.pattern, h.serve(rt.handle)); err != nil {
			return fmt.Errorf("register %s %s: %w", rt.method, rt.pattern, err)
		}
	}
	return nil
}

func (h *Handler) serve(handle func(r *http.Request, params map[string]string) (any, error)) gwruntime.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, params map[string]string) {
		resp, err := handle(r, params)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		h.write(w, http.StatusOK, resp)
	}
}

// account resolves the bearer token of the request into the calling account.
func (h *Handler) account(next func(ctx context.Context, caller model.Account, r *http.Request, params map[string]string) (any, error)) func(*http.Request, map[string]string) (any, error) {
	return func(r *http.Request, params map[string]string) (any, error) {
		caller, ok := h.tokens.Lookup(bearer(r))
		if !ok {
			return nil, fmt.Errorf("%w: unknown or missing bearer token", model.ErrUnauthorized)
		}
		return next(r.Context(), caller, r, params)
	}
}

func (h *Handler) admin(next func(*http.Request, map[string]string) (any, error)) func(*http.Request, map[string]string) (any, error) {
	return func(r *http.Request, params map[string]string) (any, error) {
		token := bearer(r)
		if h.adminToken == "" || subtle.ConstantTimeCompare([]byte(token), []byte(h.adminToken)) != 1 {
			return nil, fmt.Errorf("%w: admin token required", model.ErrUnauthorized)
		}
		return next(r, params)
	}
}

func bearer(r *http.Request) string {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

func (h *Handler) announceBlock(ctx context.Context, caller model.Account, r *http.Request, params map[string]string) (any, error) {
	height, hash, err := blockParams(params)
	if err != nil {
		return nil, err
	}
	var req AnnounceRequest
	if err := h.decode(r, &req); err != nil {
		return nil, err
	}
	return h.bridge.AnnounceBlock(ctx, caller, height, hash, req.Size, req.Chunks)
}

func (h *Handler) buffer(ctx context.Context, caller model.Account, _ *http.Request, params map[string]string) (any, error) {
	height, hash, err := blockParams(params)
	if err != nil {
		return nil, err
	}
	return h.bridge.Buffer(ctx, caller, height, hash)
}

func (h *Handler) deleteBuffer(ctx context.Context, caller model.Account, _ *http.Request, params map[string]string) (any, error) {
	height, hash, err := blockParams(params)
	if err != nil {
		return nil, err
	}
	if err := h.bridge.DeleteBuffer(ctx, caller, height, hash); err != nil {
		return nil, err
	}
	return struct{}{}, nil
}

func (h *Handler) pushChunk(ctx context.Context, caller model.Account, r *http.Request, params map[string]string) (any, error) {
	height, hash, err := blockParams(params)
	if err != nil {
		return nil, err
	}
	chunk, err := uintParam(params, "chunk", 8)
	if err != nil {
		return nil, err
	}
	data, err := io.ReadAll(http.MaxBytesReader(nil, r.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: read chunk: %v", model.ErrInvalidInput, err)
	}
	return h.bridge.PushChunk(ctx, caller, height, hash, uint8(chunk), data)
}

func (h *Handler) deleteChunk(ctx context.Context, caller model.Account, _ *http.Request, params map[string]string) (any, error) {
	height, hash, err := blockParams(params)
	if err != nil {
		return nil, err
	}
	chunk, err := uintParam(params, "chunk", 8)
	if err != nil {
		return nil, err
	}
	return h.bridge.DeleteChunk(ctx, caller, height, hash, uint8(chunk))
}

func (h *Handler) verify(ctx context.Context, caller model.Account, r *http.Request, params map[string]string) (any, error) {
	height, hash, err := blockParams(params)
	if err != nil {
		return nil, err
	}
	var req BudgetRequest
	if err := h.decode(r, &req); err != nil {
		return nil, err
	}
	return h.bridge.Verify(ctx, caller, height, hash, req.Budget)
}

func (h *Handler) endorse(ctx context.Context, caller model.Account, _ *http.Request, params map[string]string) (any, error) {
	height, hash, err := blockParams(params)
	if err != nil {
		return nil, err
	}
	return h.bridge.Endorse(ctx, caller, height, hash)
}

func (h *Handler) endorsement(r *http.Request, params map[string]string) (any, error) {
	height, hash, err := blockParams(params)
	if err != nil {
		return nil, err
	}
	return h.bridge.Endorsement(r.Context(), height, hash)
}

func (h *Handler) consensusBlocks(r *http.Request, params map[string]string) (any, error) {
	height, err := uintParam(params, "height", 64)
	if err != nil {
		return nil, err
	}
	return h.bridge.ConsensusBlocks(r.Context(), height)
}

func (h *Handler) advance(ctx context.Context, caller model.Account, r *http.Request, _ map[string]string) (any, error) {
	var req BudgetRequest
	if err := h.decode(r, &req); err != nil {
		return nil, err
	}
	return h.bridge.AdvanceChainState(ctx, caller, req.Budget)
}

func (h *Handler) chainState(r *http.Request, _ map[string]string) (any, error) {
	return h.bridge.ChainState(r.Context())
}

func (h *Handler) irreversibleBlock(r *http.Request, params map[string]string) (any, error) {
	height, err := uintParam(params, "height", 64)
	if err != nil {
		return nil, err
	}
	return h.bridge.IrreversibleBlock(r.Context(), height)
}

func (h *Handler) utxo(r *http.Request, params map[string]string) (any, error) {
	txid, err := chainhash.NewHashFromStr(params["txid"])
	if err != nil {
		return nil, fmt.Errorf("%w: txid: %v", model.ErrInvalidInput, err)
	}
	index, err := uintParam(params, "index", 32)
	if err != nil {
		return nil, err
	}
	return h.bridge.UTXO(r.Context(), *txid, uint32(index))
}

func (h *Handler) deposit(ctx context.Context, caller model.Account, r *http.Request, _ map[string]string) (any, error) {
	var req AmountRequest
	if err := h.decode(r, &req); err != nil {
		return nil, err
	}
	return h.bridge.Deposit(ctx, caller, req.Amount)
}

func (h *Handler) withdraw(ctx context.Context, caller model.Account, r *http.Request, _ map[string]string) (any, error) {
	var req AmountRequest
	if err := h.decode(r, &req); err != nil {
		return nil, err
	}
	return h.bridge.Withdraw(ctx, caller, req.Amount)
}

func (h *Handler) feeBalance(ctx context.Context, caller model.Account, _ *http.Request, _ map[string]string) (any, error) {
	return h.bridge.FeeBalance(ctx, caller)
}

func (h *Handler) registerSynchronizer(ctx context.Context, caller model.Account, r *http.Request, _ map[string]string) (any, error) {
	var req RegisterRequest
	if err := h.decode(r, &req); err != nil {
		return nil, err
	}
	return h.bridge.RegisterSynchronizer(ctx, caller, req.PayoutAddresses)
}

func (h *Handler) buySlots(ctx context.Context, caller model.Account, r *http.Request, params map[string]string) (any, error) {
	var req SlotsRequest
	if err := h.decode(r, &req); err != nil {
		return nil, err
	}
	return h.bridge.BuySlots(ctx, caller, model.Account(params["receiver"]), req.Slots)
}

func (h *Handler) synchronizer(r *http.Request, params map[string]string) (any, error) {
	return h.bridge.Synchronizer(r.Context(), model.Account(params["account"]))
}

func (h *Handler) rewardBalance(ctx context.Context, caller model.Account, _ *http.Request, _ map[string]string) (any, error) {
	return h.bridge.RewardBalance(ctx, caller)
}

func (h *Handler) claimReward(ctx context.Context, caller model.Account, _ *http.Request, _ map[string]string) (any, error) {
	amount, err := h.bridge.ClaimReward(ctx, caller)
	if err != nil {
		return nil, err
	}
	return AmountRequest{Amount: amount}, nil
}

func (h *Handler) rewardLog(r *http.Request, params map[string]string) (any, error) {
	height, err := uintParam(params, "height", 64)
	if err != nil {
		return nil, err
	}
	return h.bridge.RewardLog(r.Context(), height)
}

func (h *Handler) bootstrap(r *http.Request, _ map[string]string) (any, error) {
	var checkpoint model.IrreversibleBlock
	if err := h.decode(r, &checkpoint); err != nil {
		return nil, err
	}
	if err := h.bridge.Bootstrap(r.Context(), checkpoint); err != nil {
		return nil, err
	}
	return h.bridge.ChainState(r.Context())
}

func (h *Handler) setStake(r *http.Request, params map[string]string) (any, error) {
	var req StakeRequest
	if err := h.decode(r, &req); err != nil {
		return nil, err
	}
	mode, err := parseStakeMode(req.Mode)
	if err != nil {
		return nil, err
	}
	return h.bridge.SetStake(r.Context(), model.Account(params["account"]), mode, req.Amount)
}

func (h *Handler) purge(r *http.Request, params map[string]string) (any, error) {
	kind, ok := model.ParseResourceKind(params["kind"])
	if !ok {
		return nil, fmt.Errorf("%w: unknown resource %q", model.ErrInvalidInput, params["kind"])
	}
	height, err := uintParam(params, "height", 64)
	if err != nil {
		return nil, err
	}
	n, err := h.bridge.Purge(r.Context(), kind, height)
	if err != nil {
		return nil, err
	}
	return PurgeResponse{Kind: kind.String(), Height: height, Rows: n}, nil
}

func (h *Handler) decode(r *http.Request, v any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	if err := h.marshaler.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: decode body: %v", model.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handler) write(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", h.marshaler.ContentType(v))
	w.WriteHeader(code)
	if err := h.marshaler.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("write response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := StatusCode(err)
	if code >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.Error(err))
	}
	h.write(w, code, ErrorResponse{Error: err.Error(), Class: model.ErrorClass(err)})
}

func blockParams(params map[string]string) (uint64, chainhash.Hash, error) {
	height, err := uintParam(params, "height", 64)
	if err != nil {
		return 0, chainhash.Hash{}, err
	}
	hash, err := chainhash.NewHashFromStr(params["hash"])
	if err != nil {
		return 0, chainhash.Hash{}, fmt.Errorf("%w: hash: %v", model.ErrInvalidInput, err)
	}
	return height, *hash, nil
}

func uintParam(params map[string]string, name string, bits int) (uint64, error) {
	v, err := strconv.ParseUint(params[name], 10, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", model.ErrInvalidInput, name, err)
	}
	return v, nil
}

func parseStakeMode(name string) (model.StakeMode, error) {
	switch strings.ToLower(name) {
	case "", model.StakeBTC.String():
		return model.StakeBTC, nil
	case model.StakeXSAT.String():
		return model.StakeXSAT, nil
	default:
		return 0, fmt.Errorf("%w: unknown stake mode %q", model.ErrInvalidInput, name)
	}
}
