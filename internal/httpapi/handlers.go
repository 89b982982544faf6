package httpapi

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"csv2fasta/internal/cli"
	"csv2fasta/internal/jsonutil"
	"csv2fasta/internal/logging"
	"csv2fasta/internal/pipeline"
	"csv2fasta/internal/table"
)

// conversionParams are the query parameters accepted by /convert. File
// paths are never taken from a request.
var conversionParams = map[string]bool{
	"headers": true, "header-cols": true,
	"seqs": true, "seqs-col": true,
	"germline": true, "germline-col": true,
	"clone": true, "clone-col": true,
	"label": true, "sep": true,
	"no-header": true, "include-germline": true,
	"include-clone": true, "clone-no-sort": true,
}

// ErrorResponse is the JSON body of a failed request.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	log := logging.FromContext(r.Context())

	query := r.URL.Query()
	for k := range query {
		if !conversionParams[k] {
			respondError(w, http.StatusBadRequest, "bad_request", fmt.Sprintf("unknown parameter %q", k))
			return
		}
	}

	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	opts, err := cli.ParseArgs(fs, cli.Args(query))
	if err != nil {
		respondError(w, http.StatusBadRequest, errorCode(err), err.Error())
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, "too_large",
				fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return
		}
		respondError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	res, err := pipeline.Convert(opts.Config(), string(body))
	if err != nil {
		code := errorCode(err)
		log.Warn("conversion failed", "code", code, "error", err)
		respondError(w, http.StatusBadRequest, code, err.Error())
		return
	}
	log.Debug("converted",
		"parsed", res.Parsed,
		"dropped_empty", res.Dropped,
		"emitted", res.Emitted,
		"clone_groups", res.Groups,
	)

	w.Header().Set("Content-Type", "text/x-fasta; charset=utf-8")
	w.Header().Set("X-Record-Count", strconv.Itoa(res.Emitted))
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, res.Text)
}

// errorCode maps conversion errors to the code reported to clients.
func errorCode(err error) string {
	var cnf *table.ColumnNotFoundError
	var short *table.RowTooShortError
	var ce *table.ConfigError
	switch {
	case errors.As(err, &cnf):
		return "column_not_found"
	case errors.As(err, &short):
		return "row_too_short"
	case errors.As(err, &ce):
		return "config_error"
	default:
		return "bad_request"
	}
}

func respondError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = jsonutil.Encode(w, ErrorResponse{Error: msg, Code: code}, false)
}
