package cmd

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/phrasecheck/constants"
	"github.com/jsphweid/phrasecheck/model"
	"github.com/jsphweid/phrasecheck/pitch"
	"github.com/jsphweid/phrasecheck/rule"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the rules over HTTP",
	Long:  `Serves POST /evaluate and GET /rules on LISTEN_ADDR (default :8080).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("Could not encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

// statusFor maps evaluation errors to responses; anything unexpected is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, pitch.ErrInvalidNote),
		errors.Is(err, pitch.ErrUnrecognizedNote),
		errors.Is(err, rule.ErrUnknownRule),
		errors.Is(err, rule.ErrInvalidParam):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	var input model.EvaluateRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("Could not unmarshal request body: "+err.Error()))
		return
	}

	subject, err := pitch.PhraseFromValues(input.Subject)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	x, err := pitch.PhraseFromValues(input.X)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	res, err := rule.Evaluate(input.Rule, subject, rule.Params{X: x, K: input.K, Y: input.Y})
	if err != nil {
		logger.Debug("Evaluation failed",
			zap.String("request_id", w.Header().Get("X-Request-Id")),
			zap.String("rule", input.Rule),
			zap.Error(err))
		writeError(w, statusFor(err), err)
		return
	}

	logger.Debug("Evaluated rule",
		zap.String("request_id", w.Header().Get("X-Request-Id")),
		zap.String("rule", input.Rule),
		zap.Bool("result", res))
	writeJSON(w, http.StatusOK, model.EvaluateResponse{Rule: input.Rule, Result: res})
}

func HandleRules(w http.ResponseWriter, r *http.Request) {
	res := make([]model.RuleInfo, 0)
	for _, rl := range rule.All() {
		res = append(res, rl.Info())
	}
	writeJSON(w, http.StatusOK, res)
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Request-Id", uuid.New().String())
		next.ServeHTTP(w, r)
	})
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(requestID)
	router.HandleFunc("/evaluate", HandleEvaluate).Methods("POST")
	router.HandleFunc("/rules", HandleRules).Methods("GET")
	return cors.Default().Handler(router)
}

func serve() error {
	addr := constants.GetListenAddr()
	logger.Info("Serving", zap.String("addr", addr))
	return http.ListenAndServe(addr, NewRouter())
}
