package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/openmusickit/tonalgo/constants"
	"github.com/openmusickit/tonalgo/model"
	"github.com/openmusickit/tonalgo/spell"
	"github.com/openmusickit/tonalgo/vector"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the vector algebra over HTTP",
	Long:  `Serves the vector algebra over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func toVector(m model.Vec) vector.Vector {
	if m.O == nil {
		return vector.Interval(m.D, m.C)
	}
	return vector.Pitch(m.D, m.C, *m.O)
}

func toVec(v vector.Vector) model.Vec {
	res := model.Vec{D: v.D, C: v.C}
	if v.Pitched {
		o := v.Oct
		res.O = &o
	}
	return res
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func writeResult(w http.ResponseWriter, v vector.Vector) {
	res := model.VectorResponse{Result: toVec(v)}
	if name, err := spell.Unicode(v); err == nil {
		res.Pitch = name
	}
	if name, err := spell.IntervalAbbr(v); err == nil {
		res.Interval = name
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func handleBinOp(w http.ResponseWriter, r *http.Request, op func(x, y vector.Vector) (vector.Vector, error)) {
	var input model.BinOpRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Could not unmarshal request body: "+err.Error())
		return
	}

	res, err := op(toVector(input.X), toVector(input.Y))
	if errors.Is(err, vector.ErrShape) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeResult(w, res)
}

func HandleSum(w http.ResponseWriter, r *http.Request) {
	handleBinOp(w, r, vector.Sum)
}

func HandleDiff(w http.ResponseWriter, r *http.Request) {
	handleBinOp(w, r, vector.Diff)
}

func HandleNormalize(w http.ResponseWriter, r *http.Request) {
	var input model.UnOpRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Could not unmarshal request body: "+err.Error())
		return
	}
	writeResult(w, vector.Normalize(toVector(input.V)))
}

func HandleInvert(w http.ResponseWriter, r *http.Request) {
	var input model.UnOpRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Could not unmarshal request body: "+err.Error())
		return
	}
	writeResult(w, vector.Invert(toVector(input.V)))
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Request-Id", uuid.New().String())
		next.ServeHTTP(w, r)
	})
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/sum", HandleSum).Methods("POST")
	router.HandleFunc("/diff", HandleDiff).Methods("POST")
	router.HandleFunc("/normalize", HandleNormalize).Methods("POST")
	router.HandleFunc("/invert", HandleInvert).Methods("POST")

	addr := constants.GetServeAddr()
	fmt.Printf("Listening on %v\n", addr)
	log.Fatal(http.ListenAndServe(addr, cors.Default().Handler(requestID(router))))
}
