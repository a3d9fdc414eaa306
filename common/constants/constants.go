package constants

const (
	PayGateName = "paygate"

	// costs in base units of the payment token (USDC has 6 decimals)
	CostPost    = 20000
	CostComment = 5000
	CostUpvote  = 1000

	PERCENT = 10000

	RewardRateAuthor   = 8000
	RewardRatePlatform = PERCENT - RewardRateAuthor

	USDCMintMainnet = "EPjFWdd5AufqSSqeM2qN1xzybapC8G4wEGGkZwyTDt1v"
	USDCMintDevnet  = "4zMMC9srt5Ri5X14GAgXhaHii3GnPAEERYPJgZJDncDU"

	ClusterMainnet = "mainnet"
	ClusterDevnet  = "devnet"
	ClusterCustom  = "custom"

	RPCEndpointMainnet = "https://api.mainnet-beta.solana.com"
	RPCEndpointDevnet  = "https://api.devnet.solana.com"

	CommitmentProcessed = "processed"
	CommitmentConfirmed = "confirmed"
	CommitmentFinalized = "finalized"

	DefaultConfirmTimeoutMs = 60 * 1000
	DefaultPollIntervalMs   = 500
	DefaultRequestsPerSec   = 20
	DefaultReadRetries      = 3

	SignerSecretEnv = "PAYGATE_PLATFORM_SIGNER"

	NoticeTrxConfirmed = "trxconfirmed"
	NoticeTrxFailed    = "trxfailed"
	NoticeTrxTimedOut  = "trxtimedout"
	NoticeTrxRejected  = "trxrejected"

	// signatures remembered by the submission tracker
	TrackerSize = 4096

	// bytes of derived token addresses memoised by the resolver
	AddressCacheSize = 4 * 1024 * 1024
)
