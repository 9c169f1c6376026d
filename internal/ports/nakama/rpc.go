package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"sync"

	"broadside/internal/app"
	"broadside/internal/bot"
	"broadside/internal/config"
	"broadside/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

var (
	sessions = app.NewSessionRegistry(app.DefaultMaxSessionsPerUser)
	tokens   *app.TokenService
	tokensMu sync.Mutex
)

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer) error {
	rpcs := map[string]func(context.Context, runtime.Logger, *sql.DB, runtime.NakamaModule, string) (string, error){
		RpcEngineCreate: rpcEngineCreate,
		RpcPlaceShip:    rpcPlaceShip,
		RpcGetMove:      rpcGetMove,
		RpcUpdate:       rpcUpdate,
		RpcNewRound:     rpcNewRound,
		RpcInspect:      rpcInspect,
		RpcEngineClose:  rpcEngineClose,
	}
	for id, fn := range rpcs {
		if err := initializer.RegisterRpc(id, fn); err != nil {
			return err
		}
	}
	return nil
}

// sessionTokens returns the process token service, building it from the
// runtime env on first use.
func sessionTokens(ctx context.Context, logger runtime.Logger) *app.TokenService {
	tokensMu.Lock()
	defer tokensMu.Unlock()
	if tokens != nil {
		return tokens
	}
	secret := envValue(ctx, envTokenSecret)
	if secret == "" {
		secret = "test-secret"
		logger.Warn("Session token secret missing from env, using test default.")
	}
	tokens = app.NewTokenService(secret, TokenIssuer, app.DefaultTokenTTL)
	return tokens
}

func envValue(ctx context.Context, key string) string {
	env, ok := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	if !ok {
		return ""
	}
	return env[key]
}

func callerID(ctx context.Context) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)
	if userID == "" {
		return "", runtime.NewError("Authentication required", codeUnauthenticated)
	}
	return userID, nil
}

func decodePayload(payload string, v interface{}) error {
	if strings.TrimSpace(payload) == "" {
		payload = "{}"
	}
	if err := json.Unmarshal([]byte(payload), v); err != nil {
		return runtime.NewError("Invalid payload", codeInvalidArgument)
	}
	return nil
}

func encode(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", runtime.NewError("Internal error", codeInternal)
	}
	return string(b), nil
}

// engineError maps engine and registry errors onto runtime errors.
func engineError(logger runtime.Logger, fn string, err error) error {
	switch {
	case errors.Is(err, domain.ErrOutOfBounds),
		errors.Is(err, domain.ErrInvalidLength),
		errors.Is(err, domain.ErrInvalidOrientation),
		errors.Is(err, domain.ErrUnknownOutcome):
		return runtime.NewError(err.Error(), codeInvalidArgument)
	case errors.Is(err, bot.ErrNoTargets), errors.Is(err, bot.ErrNoRoom):
		return runtime.NewError(err.Error(), codeFailedPrecondition)
	case errors.Is(err, app.ErrSessionNotFound):
		return runtime.NewError("Engine session not found", codeNotFound)
	case errors.Is(err, app.ErrNotOwner), errors.Is(err, app.ErrInvalidToken):
		return runtime.NewError("Invalid session token", codeUnauthenticated)
	case errors.Is(err, app.ErrSessionLimit):
		return runtime.NewError("Too many engine sessions", codeResourceExhausted)
	default:
		logger.Error("%s: %v", fn, err)
		return runtime.NewError("Internal error", codeInternal)
	}
}

// resolveSession checks the caller's token and returns the session it names.
func resolveSession(ctx context.Context, logger runtime.Logger, token string) (*app.Session, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	claims, err := sessionTokens(ctx, logger).Verify(token)
	if err != nil {
		logger.Warn("resolveSession [User:%s]: Rejected token: %v", userID, err)
		return nil, runtime.NewError("Invalid session token", codeUnauthenticated)
	}
	if claims.UserID != userID {
		logger.Warn("resolveSession [User:%s]: Token issued to %s", userID, claims.UserID)
		return nil, runtime.NewError("Invalid session token", codeUnauthenticated)
	}
	session, err := sessions.Get(claims.SessionID, userID)
	if err != nil {
		return nil, engineError(logger, "resolveSession", err)
	}
	return session, nil
}

// rpcEngineCreate opens an engine session for the caller.
// Payload: {"captain"?, "placement"?, "scan"?, "middle_sweep"?, "seed"?}
// Returns: {"session_id", "token", "board_size", "placement", "scan"}
func rpcEngineCreate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, err := callerID(ctx)
	if err != nil {
		return "", err
	}
	var req createRequest
	if err := decodePayload(payload, &req); err != nil {
		return "", err
	}

	cfg := config.GetEngineConfig()
	if req.Captain != "" {
		captain, ok := bot.GetCaptain(req.Captain)
		if !ok {
			return "", runtime.NewError("Unknown captain", codeNotFound)
		}
		cfg = captain.EngineConfig(cfg)
	}
	if req.Placement != "" {
		cfg.Placement = req.Placement
	}
	if req.Scan != "" {
		cfg.Scan = req.Scan
	}
	if req.MiddleSweep != nil {
		cfg.MiddleSweep = *req.MiddleSweep
	}
	if req.Seed != 0 {
		cfg.Seed = req.Seed
	}
	if err := cfg.Validate(); err != nil {
		return "", runtime.NewError(err.Error(), codeInvalidArgument)
	}

	session, err := sessions.Create(userID, cfg, bot.WithLogger(logger.WithField("user_id", userID)))
	if err != nil {
		return "", engineError(logger, "rpcEngineCreate", err)
	}
	token, err := sessionTokens(ctx, logger).Issue(session.ID, userID)
	if err != nil {
		_ = sessions.Close(session.ID, userID)
		logger.Error("rpcEngineCreate [User:%s]: Failed to issue token: %v", userID, err)
		return "", runtime.NewError("Internal error", codeInternal)
	}

	logger.Info("rpcEngineCreate [User:%s]: Opened session %s (placement %s, scan %s)", userID, session.ID, cfg.Placement, cfg.Scan)
	return encode(createResponse{
		SessionID: session.ID,
		Token:     token,
		BoardSize: cfg.BoardSize,
		Placement: cfg.Placement,
		Scan:      cfg.Scan,
	})
}

// rpcPlaceShip places the next ship of the session's fleet.
// Payload: {"token", "length"}
func rpcPlaceShip(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req placeShipRequest
	if err := decodePayload(payload, &req); err != nil {
		return "", err
	}
	session, err := resolveSession(ctx, logger, req.Token)
	if err != nil {
		return "", err
	}

	var placement domain.Placement
	err = session.Do(func(e *bot.Engine) error {
		p, err := e.PlaceShip(req.Length)
		placement = p
		return err
	})
	if err != nil {
		return "", engineError(logger, "rpcPlaceShip", err)
	}
	return encode(placementToMessage(placement))
}

// rpcGetMove returns the engine's next shot.
// Payload: {"token"}
func rpcGetMove(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req sessionRequest
	if err := decodePayload(payload, &req); err != nil {
		return "", err
	}
	session, err := resolveSession(ctx, logger, req.Token)
	if err != nil {
		return "", err
	}

	var move domain.Coord
	err = session.Do(func(e *bot.Engine) error {
		c, err := e.GetMove()
		move = c
		return err
	})
	if err != nil {
		return "", engineError(logger, "rpcGetMove", err)
	}
	return encode(coordToMessage(move))
}

// rpcUpdate reports a shot result, an opponent shot or the round result.
// Payload: {"token", "kind": "miss"|"hit"|"kill"|"opponent_shot"|"win"|"lose"|"tie", "row", "col"}
func rpcUpdate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req updateRequest
	if err := decodePayload(payload, &req); err != nil {
		return "", err
	}
	session, err := resolveSession(ctx, logger, req.Token)
	if err != nil {
		return "", err
	}
	outcome, err := outcomeFromRequest(req)
	if err != nil {
		return "", engineError(logger, "rpcUpdate", err)
	}

	if err := session.Do(func(e *bot.Engine) error { return e.Update(outcome) }); err != nil {
		return "", engineError(logger, "rpcUpdate", err)
	}
	return "{}", nil
}

// rpcNewRound folds the finished round and clears per-round state.
// Payload: {"token"}
func rpcNewRound(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req sessionRequest
	if err := decodePayload(payload, &req); err != nil {
		return "", err
	}
	session, err := resolveSession(ctx, logger, req.Token)
	if err != nil {
		return "", err
	}

	var round int
	_ = session.Do(func(e *bot.Engine) error {
		e.NewRound()
		round = e.Round()
		return nil
	})
	return encode(roundMessage{Round: round})
}

// rpcInspect returns a protojson snapshot of the engine's targeting state.
// Payload: {"token"}
func rpcInspect(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req sessionRequest
	if err := decodePayload(payload, &req); err != nil {
		return "", err
	}
	session, err := resolveSession(ctx, logger, req.Token)
	if err != nil {
		return "", err
	}

	var snapshot map[string]interface{}
	_ = session.Do(func(e *bot.Engine) error {
		record := e.History().Record
		snapshot = map[string]interface{}{
			"session_id":  session.ID,
			"round":       e.Round(),
			"hunt_state":  e.HuntState().String(),
			"placement":   e.Config().Placement,
			"scan":        e.Config().Scan,
			"shots_fired": len(e.Memory().Shots),
			"kills":       e.Memory().Kills,
			"last_result": e.Memory().LastResult().String(),
			"ships":       e.Board().ShipsPlaced(),
			"record": map[string]interface{}{
				"wins":   record.Wins,
				"losses": record.Losses,
				"ties":   record.Ties,
			},
			"density": densityRows(e.Density()),
		}
		return nil
	})

	st, err := structpb.NewStruct(snapshot)
	if err != nil {
		logger.Error("rpcInspect: Failed to build snapshot: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}
	out, err := protojson.Marshal(st)
	if err != nil {
		logger.Error("rpcInspect: Failed to marshal snapshot: %v", err)
		return "", runtime.NewError("Internal error", codeInternal)
	}
	return string(out), nil
}

// rpcEngineClose discards the caller's engine session.
// Payload: {"token"}
func rpcEngineClose(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	var req sessionRequest
	if err := decodePayload(payload, &req); err != nil {
		return "", err
	}
	session, err := resolveSession(ctx, logger, req.Token)
	if err != nil {
		return "", err
	}
	if err := sessions.Close(session.ID, session.UserID); err != nil {
		return "", engineError(logger, "rpcEngineClose", err)
	}
	logger.Info("rpcEngineClose [User:%s]: Closed session %s", session.UserID, session.ID)
	return "{}", nil
}
