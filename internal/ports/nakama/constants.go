package nakama

// RPC ids registered with Nakama.
const (
	RpcEngineCreate = "broadside_engine_create"
	RpcPlaceShip    = "broadside_place_ship"
	RpcGetMove      = "broadside_get_move"
	RpcUpdate       = "broadside_update"
	RpcNewRound     = "broadside_new_round"
	RpcInspect      = "broadside_inspect"
	RpcEngineClose  = "broadside_engine_close"
)

// TokenIssuer is the issuer claim on engine session tokens.
const TokenIssuer = "broadside"

// Runtime env keys.
const (
	envTokenSecret  = "broadside_token_secret"
	envEngineConfig = "broadside_engine_config" // path to an engine profile yaml
	envCaptains     = "broadside_captains"      // path to captain identities json
)

// gRPC status codes returned through runtime.NewError.
const (
	codeInvalidArgument    = 3
	codeNotFound           = 5
	codeResourceExhausted  = 8
	codeFailedPrecondition = 9
	codeInternal           = 13
	codeUnauthenticated    = 16
)
