// @title           Resume RAG API
// @version         1.0
// @description     This API manages resume documents with retrieval augmented chat
// @termsOfService  http://swagger.io/terms/

// @contact.name    me lol
// @contact.url
// @contact.email

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/akolanti/ResumeRAG/internal/config"
	"github.com/akolanti/ResumeRAG/internal/data/docStore"
	"github.com/akolanti/ResumeRAG/internal/data/store"
	"github.com/akolanti/ResumeRAG/internal/handlers"
	"github.com/akolanti/ResumeRAG/internal/mcpServer"
	"github.com/akolanti/ResumeRAG/internal/rag"
	"github.com/akolanti/ResumeRAG/internal/rag/embedding"
	"github.com/akolanti/ResumeRAG/internal/rag/embedding/googleEmbedding"
	"github.com/akolanti/ResumeRAG/internal/rag/embedding/openaiEmbedding"
	"github.com/akolanti/ResumeRAG/internal/rag/llm"
	"github.com/akolanti/ResumeRAG/internal/rag/llm/gemini"
	"github.com/akolanti/ResumeRAG/internal/rag/llm/openaiLLM"
	"github.com/akolanti/ResumeRAG/internal/rag/vectorDB"
	"github.com/akolanti/ResumeRAG/internal/rag/vectorDB/memoryDB"
	"github.com/akolanti/ResumeRAG/internal/rag/vectorDB/qdrantDB"
	"github.com/akolanti/ResumeRAG/internal/resource"
	"github.com/akolanti/ResumeRAG/internal/server"
	"github.com/akolanti/ResumeRAG/pkg/logger_i"
)

var (
	listenAddr string
	mcpMode    bool
)

func main() {

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found", "error", err)
	}
	config.Load()

	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.BoolVar(&mcpMode, "mcp", false, "serve tools over MCP stdio instead of HTTP")
	flag.Parse()

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	//vector index, falls back to in-memory when qdrant is unreachable
	var index vectorDB.Index
	if config.VectorBackend == "qdrant" {
		if qdrantClient := qdrantDB.GetQdrantClient(serviceContext); qdrantClient != nil {
			index = qdrantClient
		} else {
			logger.Error("Qdrant is offline")
		}
	}
	if index == nil {
		logger.Warn("Using the in-memory vector index, vectors are lost on restart")
		index = memoryDB.NewStore()
	}
	if err := index.Init(serviceContext); err != nil {
		logger.Error("Could not initialize the vector index. Shutting down.", "error", err)
		return
	}

	//ai provider selection
	var embeddingClient embedding.Client
	var llmProvider llm.Provider
	if config.AIProvider == "gemini" {
		embeddingClient = googleEmbedding.GetGoogleEmbeddingClient(serviceContext, config.GoogleEmbeddingModel, config.GoogleAPIKey)
		llmProvider = gemini.GetGeminiClient(serviceContext, config.GeminiModelName, config.GoogleAPIKey)
	} else {
		embeddingClient = openaiEmbedding.GetOpenAIEmbeddingClient(config.OpenAIEmbeddingModel, config.OpenAIAPIKey)
		llmProvider = openaiLLM.GetOpenAIClient(serviceContext, config.OpenAIModelName, config.OpenAIAPIKey)
	}

	if embeddingClient == nil || llmProvider == nil {
		logger.Error("One or more external services failed to initialize. Shutting down.")
		logger.Debug("Available services : ", "Provider", config.AIProvider, "EmbeddingService", embeddingClient != nil, "LLMProvider", llmProvider != nil)
		return
	}
	embeddingService := embedding.NewManager(embeddingClient)

	//document store
	documents, err := docStore.NewSQLiteStore(config.DocumentDBPath)
	if err != nil {
		logger.Error("Could not open the document store. Shutting down.", "error", err)
		return
	}
	defer documents.Close()

	resources := resource.NewManager(documents, embeddingService, index)
	ragService := rag.NewService(index, llmProvider, embeddingService, resources)

	//chat history, falls back to in-memory when redis is unreachable
	var messageStore store.MessageStore
	if redisMessages := store.GetRedisMessageStore(serviceContext); redisMessages != nil {
		messageStore = redisMessages
	} else {
		logger.Error("Redis store is offline")
		messageStore = store.InitMessageStore()
	}

	handlers.Initialize(resources, ragService, messageStore)

	if mcpMode {
		mcpContext, stop := signal.NotifyContext(serviceContext, syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		if err := mcpServer.NewServer(ragService, resources).Run(mcpContext); err != nil {
			logger.Error("MCP server stopped", "error", err)
		}
		return
	}

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}
