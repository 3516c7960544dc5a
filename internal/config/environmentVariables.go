package config

import (
	"log/slog"
	"os"
	"time"
)

const (
	IS_PROD        = false
	LOG_LEVEL_PROD = slog.LevelInfo
	TRACE_ID_KEY   = "traceId"

	RATE_LIMIT_PER_SECOND       = 2
	BURST_RATE_LIMIT_PER_SECOND = 5

	//chunking - window/overlap are byte offsets into the document content
	ChunkSize            = 1000
	ChunkOverlap         = 200
	MaxChunksPerDocument = 10000

	//TODO:this will differ based on the request and provider
	EmbeddingOutputDimensionality int32 = 1536
	EmbeddingDBName                     = "resume-chunks"

	//retrieval
	DefaultSearchLimit = 5
	ToolSearchLimit    = 10

	//chat
	MaxToolSteps       = 5
	MessageHistorySize = 5

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 30 * time.Second
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	//vectorDB
	QdrantHost             = "localhost"
	QdrantGrpcPort         = 6334
	QdrantUseTLS           = false
	QdrantPoolSize         = 1 //2-5 is preferred for prod according to documentation
	QdrantKeepAliveTimeout = 30 * time.Second

	//llm
	OpenAIModelName      = "gpt-4o-mini"
	OpenAIEmbeddingModel = "text-embedding-3-small"
	GeminiModelName      = "gemini-2.5-flash-lite-preview-09-2025"
	GoogleEmbeddingModel = "gemini-embedding-001"

	ModelTemperature float64 = 0.7

	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second

	//redis
	redisHost = "127.0.0.1"
	redisPort = "6379"
	RedisAddr = redisHost + ":" + redisPort

	RedisMessageStore    = 1
	RedisMessageStoreTTL = 24 * time.Hour

	//sqlite document store
	DocumentDBPath = "documents.db"
)

// env backed values - call Load once after godotenv in main
var (
	AuthToken     string
	NoAuthBypass  bool
	OpenAIAPIKey  string
	GoogleAPIKey  string
	RedisPassword string
	AIProvider    string //"openai" (default) or "gemini"
	VectorBackend string //"qdrant" (default) or "memory"
)

func Load() {
	AuthToken = os.Getenv("AUTH_TOKEN")
	NoAuthBypass = os.Getenv("AUTH_BYPASS") == "true" || AuthToken == ""
	OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	GoogleAPIKey = os.Getenv("GEMINI_API_KEY")
	RedisPassword = os.Getenv("REDIS_PASSWORD")

	AIProvider = os.Getenv("AI_PROVIDER")
	if AIProvider != "gemini" {
		AIProvider = "openai"
	}

	VectorBackend = os.Getenv("VECTOR_BACKEND")
	if VectorBackend != "memory" {
		VectorBackend = "qdrant"
	}
}
