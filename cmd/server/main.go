package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	classicalcrypto "github.com/baditaflorin/go_classical_crypto"
	"github.com/baditaflorin/go_classical_crypto/internal/core/domain"
	"github.com/baditaflorin/go_classical_crypto/pkg/frequency"
	"github.com/baditaflorin/go_classical_crypto/pkg/transposition"
	"github.com/baditaflorin/go_classical_crypto/pkg/vigenere"
	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"
)

// Default configuration
const (
	DefaultPort           = 8080
	DefaultReadTimeout    = 30 * time.Second
	DefaultWriteTimeout   = 30 * time.Second
	DefaultMaxRequestSize = 10 * 1024 * 1024 // 10MB
	DefaultConcurrency    = 0                // 0 means use GOMAXPROCS
)

// Cipher engines shared across requests
var (
	// Standard repeating-key Vigenere cipher
	vigenereCipher *vigenere.Vigenere

	// Autokey variant
	autokeyCipher *vigenere.Vigenere

	// Columnar transposition cipher
	transpositionCipher *transposition.Transposition

	// Frequency analyzer
	frequencyAnalyzer *frequency.Frequency

	// Logger instance
	logger l.Logger
)

// CipherRequest represents an encipher or decipher request
type CipherRequest struct {
	Key      string `json:"key"`
	Text     string `json:"text"`
	Decipher bool   `json:"decipher,omitempty"`
	Autokey  bool   `json:"autokey,omitempty"`
}

// FrequencyRequest represents a frequency analysis request
type FrequencyRequest struct {
	Text    string `json:"text"`
	Digrams bool   `json:"digrams,omitempty"`
}

// CipherResponse represents a cipher computation response
type CipherResponse struct {
	Cipher      string                 `json:"cipher"`
	Output      string                 `json:"output"`
	Grouped     string                 `json:"grouped"`
	InputLength int                    `json:"input_length"`
	KeyLength   int                    `json:"key_length"`
	Details     map[string]interface{} `json:"details,omitempty"`
}

// FrequencyResponse represents a frequency analysis response
type FrequencyResponse struct {
	Letters map[string]int `json:"letters"`
	Digrams map[string]int `json:"digrams,omitempty"`
	Total   int            `json:"total"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

func main() {
	// Parse command-line flags
	port := flag.Int("port", DefaultPort, "HTTP server port")
	readTimeout := flag.Duration("read-timeout", DefaultReadTimeout, "HTTP read timeout")
	writeTimeout := flag.Duration("write-timeout", DefaultWriteTimeout, "HTTP write timeout")
	maxRequestSize := flag.Int("max-request-size", DefaultMaxRequestSize, "Maximum request size in bytes")
	concurrency := flag.Int("concurrency", DefaultConcurrency, "Maximum number of concurrent requests (0 = GOMAXPROCS)")
	warmUp := flag.Bool("warm-up", true, "Perform system warm-up on startup")
	logFile := flag.String("log-file", "", "Log file path (empty = stdout)")
	flag.Parse()

	// Set up logger
	var err error
	logger, err = createLogger(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	logger.Info("Starting classical crypto HTTP server",
		"port", *port,
		"read_timeout", *readTimeout,
		"write_timeout", *writeTimeout,
		"max_request_size", *maxRequestSize,
		"concurrency", *concurrency,
	)

	// Initialize cipher engines
	initCipherEngines(*warmUp)

	// Create HTTP server with fasthttp
	server := &fasthttp.Server{
		Handler:               requestHandler,
		ReadTimeout:           *readTimeout,
		WriteTimeout:          *writeTimeout,
		MaxRequestBodySize:    *maxRequestSize,
		Concurrency:           *concurrency,
		DisableKeepalive:      false,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxConnsPerIP:         0, // unlimited
		MaxRequestsPerConn:    0, // unlimited
		MaxIdleWorkerDuration: 10 * time.Second,
		Logger:                nil, // we'll handle logging ourselves
	}

	// Set up graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		logger.Info("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			logger.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	// Start server
	logger.Info("Server listening", "address", fmt.Sprintf(":%d", *port))
	if err := server.ListenAndServe(fmt.Sprintf(":%d", *port)); err != nil {
		logger.Error("Server error", "error", err)
	}

	<-idleConnsClosed
	logger.Info("Server stopped")
}

// initCipherEngines initializes the cipher engines with performance optimizations
func initCipherEngines(warmUp bool) {
	var err error

	opts := []vigenere.Option{
		vigenere.WithOptimizedNormalizer(),
		vigenere.WithLogger(logger),
	}
	if warmUp {
		opts = append(opts, vigenere.WithWarmUp(true))
	}

	vigenereCipher, err = vigenere.New(opts...)
	if err != nil {
		logger.Error("Failed to initialize Vigenere cipher", "error", err)
		os.Exit(1)
	}

	autokeyCipher, err = vigenere.New(append(opts, vigenere.WithAutokey(true))...)
	if err != nil {
		logger.Error("Failed to initialize autokey cipher", "error", err)
		os.Exit(1)
	}

	trOpts := []transposition.Option{
		transposition.WithOptimizedNormalizer(),
		transposition.WithLogger(logger),
	}
	if warmUp {
		trOpts = append(trOpts, transposition.WithWarmUp(true))
	}

	transpositionCipher, err = transposition.New(trOpts...)
	if err != nil {
		logger.Error("Failed to initialize transposition cipher", "error", err)
		os.Exit(1)
	}

	frequencyAnalyzer, err = frequency.New(
		frequency.WithOptimizedNormalizer(),
		frequency.WithLogger(logger),
	)
	if err != nil {
		logger.Error("Failed to initialize frequency analyzer", "error", err)
		os.Exit(1)
	}

	logger.Info("Cipher engines initialized successfully",
		"warm_up", warmUp,
		"cpus", runtime.NumCPU(),
	)
}

// requestHandler is the main fasthttp request handler
func requestHandler(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()

	// Set common headers
	ctx.Response.Header.Set("Content-Type", "application/json")
	ctx.Response.Header.Set("Server", "ClassicalCryptoServer")

	// Route based on path
	switch string(ctx.Path()) {
	case "/health":
		handleHealthCheck(ctx)
	case "/vigenere":
		handleVigenere(ctx)
	case "/transposition":
		handleTransposition(ctx)
	case "/frequency":
		handleFrequency(ctx)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		writeJSONError(ctx, "Not found")
	}

	// Log request
	duration := time.Since(startTime)
	logger.Info("Request processed",
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", duration,
	)
}

// handleHealthCheck responds to health check requests
func handleHealthCheck(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	response := map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	}
	writeJSONResponse(ctx, response)
}

// handleVigenere handles Vigenere encipher and decipher requests
func handleVigenere(ctx *fasthttp.RequestCtx) {
	req, ok := parseCipherRequest(ctx)
	if !ok {
		return
	}

	cipher := vigenereCipher
	if req.Autokey {
		cipher = autokeyCipher
	}

	// Create context with timeout
	c, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := runCipher(c, cipher.Encipher, cipher.Decipher, req)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, err.Error())
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, CipherResponse{
		Cipher:      result.Name,
		Output:      result.Output,
		Grouped:     classicalcrypto.FormatGroups(result.Output),
		InputLength: result.InputLength,
		KeyLength:   result.KeyLength,
		Details:     result.Details,
	})
}

// handleTransposition handles columnar transposition requests
func handleTransposition(ctx *fasthttp.RequestCtx) {
	req, ok := parseCipherRequest(ctx)
	if !ok {
		return
	}

	// Create context with timeout
	c, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := runCipher(c, transpositionCipher.Encipher, transpositionCipher.Decipher, req)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, err.Error())
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, CipherResponse{
		Cipher:      result.Name,
		Output:      result.Output,
		Grouped:     classicalcrypto.FormatGroups(result.Output),
		InputLength: result.InputLength,
		KeyLength:   result.KeyLength,
		Details:     result.Details,
	})
}

// handleFrequency handles frequency analysis requests
func handleFrequency(ctx *fasthttp.RequestCtx) {
	// Only accept POST requests
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		writeJSONError(ctx, "Method not allowed")
		return
	}

	// Parse request
	var req FrequencyRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "Invalid request: "+err.Error())
		return
	}

	if req.Text == "" {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "Text is required")
		return
	}

	// Create context with timeout
	c, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	letters := frequencyAnalyzer.Letters(c, req.Text)

	response := FrequencyResponse{
		Letters: make(map[string]int),
		Total:   letters.Total(),
	}
	for i, count := range letters {
		if count > 0 {
			response.Letters[string(rune('A'+i))] = count
		}
	}

	if req.Digrams {
		digrams := frequencyAnalyzer.Digrams(c, req.Text)
		response.Digrams = make(map[string]int, len(digrams))
		for digram, count := range digrams {
			response.Digrams[digram.String()] = count
		}
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	writeJSONResponse(ctx, response)
}

// Helper functions

// parseCipherRequest parses and validates a cipher request body. It writes
// the error response itself when the request is rejected.
func parseCipherRequest(ctx *fasthttp.RequestCtx) (CipherRequest, bool) {
	var req CipherRequest

	// Only accept POST requests
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		writeJSONError(ctx, "Method not allowed")
		return req, false
	}

	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "Invalid request: "+err.Error())
		return req, false
	}

	if req.Key == "" {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		writeJSONError(ctx, "Key is required")
		return req, false
	}

	return req, true
}

type cipherFunc func(ctx context.Context, key, text string) (domain.Result, error)

// runCipher dispatches to the encipher or decipher direction.
func runCipher(ctx context.Context, encipher, decipher cipherFunc, req CipherRequest) (domain.Result, error) {
	if req.Decipher {
		return decipher(ctx, req.Key, req.Text)
	}
	return encipher(ctx, req.Key, req.Text)
}

// writeJSONResponse writes a JSON response to the context
func writeJSONResponse(ctx *fasthttp.RequestCtx, data interface{}) {
	response, err := json.Marshal(data)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		logger.Error("Error marshaling JSON response", "error", err)
		writeJSONError(ctx, "Internal server error")
		return
	}

	ctx.SetBody(response)
}

// writeJSONError writes a JSON error response to the context
func writeJSONError(ctx *fasthttp.RequestCtx, message string) {
	errResponse := ErrorResponse{
		Error: message,
	}

	response, err := json.Marshal(errResponse)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		logger.Error("Error marshaling JSON error response", "error", err)
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}

	ctx.SetBody(response)
}

// createLogger creates and configures a logger
func createLogger(logFile string) (l.Logger, error) {
	// Create a logger factory
	factory := l.NewStandardFactory()

	// Configure the logger
	var output io.Writer = os.Stdout
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		output = file
	}

	// Create the logger
	logger, err := factory.CreateLogger(l.Config{
		Output:      output,
		JsonFormat:  true,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,       // 1MB
		MaxFileSize: 100 * 1024 * 1024, // 100MB
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return logger, nil
}
