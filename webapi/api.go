package webapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"yu-val-weiss/ape2ud/app"
	"yu-val-weiss/ape2ud/nlp/format/apertium"
	nlp "yu-val-weiss/ape2ud/nlp/types"
	"yu-val-weiss/ape2ud/util/conf"

	"github.com/gonuts/commander"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// Requests larger than this are rejected
const MAX_BODY_SIZE = 8 * 1024 * 1024

var (
	apiAddr    string
	apiConf    string
	apiWorkers int
)

type conlluResponse struct {
	CoNLLU    string `json:"conllu"`
	Sentences int    `json:"sentences"`
	Tokens    int    `json:"tokens"`
	OOV       int    `json:"oov"`
	Removed   int    `json:"removed"`
	Skipped   int    `json:"skipped"`
}

type tagJSON struct {
	Tag   string   `json:"tag"`
	UPOS  string   `json:"upos,omitempty"`
	Feats []string `json:"feats,omitempty"`
	Misc  []string `json:"misc,omitempty"`
}

type tagsResponse struct {
	Dialect string    `json:"dialect"`
	Tags    []tagJSON `json:"tags"`
}

type dialectsResponse struct {
	Dialects []string `json:"dialects"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// requestSettings overrides base with the query parameters of r
func requestSettings(base *conf.Settings, r *http.Request) (*conf.Settings, error) {
	settings := *base
	query := r.URL.Query()
	if dialect := query.Get("dialect"); len(dialect) > 0 {
		settings.Dialect = dialect
	}
	for name, target := range map[string]*bool{
		"lenient":    &settings.Lenient,
		"debug":      &settings.Debug,
		"nfc":        &settings.NFC,
		"spaceafter": &settings.SpaceAfter,
	} {
		value := query.Get(name)
		if len(value) == 0 {
			continue
		}
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("bad %s value %q", name, value)
		}
		*target = parsed
	}
	if value := query.Get("nbest"); len(value) > 0 {
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("bad nbest value %q", value)
		}
		settings.NBest = n
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

func handleConvert(base *conf.Settings) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		settings, err := requestSettings(base, r)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		converter, err := app.NewConverter(settings, "request")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		var out bytes.Buffer
		body := http.MaxBytesReader(w, r.Body, MAX_BODY_SIZE)
		stats, err := converter.Run(r.Context(), body, &out)
		if err != nil {
			var (
				unknown   *apertium.UnknownTagError
				malformed *apertium.MalformedTokenError
			)
			if errors.As(err, &unknown) || errors.As(err, &malformed) {
				writeError(w, http.StatusUnprocessableEntity, err.Error())
				return
			}
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, conlluResponse{
			CoNLLU:    out.String(),
			Sentences: stats.Sentences,
			Tokens:    stats.Tokens,
			OOV:       stats.OOV,
			Removed:   stats.Removed,
			Skipped:   stats.Skipped,
		})
	}
}

func handleDialects(w http.ResponseWriter, r *http.Request) {
	dialects := apertium.Dialects()
	names := make([]string, len(dialects))
	for i, d := range dialects {
		names[i] = d.String()
	}
	writeJSON(w, http.StatusOK, dialectsResponse{Dialects: names})
}

func featureStrings(features []apertium.Feature) []string {
	if len(features) == 0 {
		return nil
	}
	strs := make([]string, len(features))
	for i, f := range features {
		strs[i] = f.Name + nlp.FEATURE_SEPARATOR + f.Value
	}
	return strs
}

func handleTags(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["dialect"]
	dialect, err := apertium.ParseDialect(name)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	tags := apertium.Tags(dialect)
	response := tagsResponse{Dialect: dialect.String(), Tags: make([]tagJSON, len(tags))}
	for i, tag := range tags {
		effect, _ := apertium.Lookup(dialect, tag)
		entry := tagJSON{
			Tag:   tag,
			Feats: featureStrings(effect.Feats),
			Misc:  featureStrings(effect.Misc),
		}
		if effect.UPOS != nlp.NoUPOS {
			entry.UPOS = effect.UPOS.String()
		}
		response.Tags[i] = entry
	}
	writeJSON(w, http.StatusOK, response)
}

// NewHandler routes the API over base, the settings requests start from
func NewHandler(base *conf.Settings) http.Handler {
	router := mux.NewRouter()
	v1 := router.PathPrefix("/v1").Subrouter()
	v1.HandleFunc("/conllu", handleConvert(base)).Methods(http.MethodPost)
	v1.HandleFunc("/dialects", handleDialects).Methods(http.MethodGet)
	v1.HandleFunc("/tags/{dialect}", handleTags).Methods(http.MethodGet)
	return cors.Default().Handler(router)
}

func APIServe(cmd *commander.Command, args []string) error {
	base := conf.Default()
	if len(apiConf) > 0 {
		var err error
		if base, err = conf.ReadFile(apiConf); err != nil {
			return fmt.Errorf("reading configuration %s: %w", apiConf, err)
		}
	}
	if apiWorkers > 0 {
		base.Workers = apiWorkers
	}
	if err := base.Validate(); err != nil {
		return err
	}
	log.Println("Configuration")
	log.Printf("Dialect:\t\t%s", base.Dialect)
	log.Printf("Workers:\t\t%v", base.Workers)
	log.Println()
	log.Printf("Listening on %s", apiAddr)
	return http.ListenAndServe(apiAddr, NewHandler(base))
}

func APICmd() *commander.Command {
	cmd := &commander.Command{
		Run:       APIServe,
		UsageLine: "api [options]",
		Short:     "serve the converter over HTTP",
		Long: `
serve the converter over HTTP

	$ ./ape2ud api -addr :8000 [options]

	POST /v1/conllu?dialect=giella&nbest=1   body: analyzer stream lines
	GET  /v1/dialects
	GET  /v1/tags/{dialect}
`,
		Flag: *flag.NewFlagSet("api", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&apiAddr, "addr", ":8000", "Listen address")
	cmd.Flag.StringVar(&apiConf, "conf", "", "YAML configuration file with request defaults")
	cmd.Flag.IntVar(&apiWorkers, "workers", 0, "Number of analysis workers per request (overrides configuration)")
	return cmd
}

func AllCommands() *commander.Command {
	cmd := &commander.Command{
		UsageLine: "api",
		Short:     "converter http api",
	}
	cmd.Subcommands = []*commander.Command{
		APICmd(),
	}
	return cmd
}
