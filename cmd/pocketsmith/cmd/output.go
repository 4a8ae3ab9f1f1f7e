package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/lextoumbourou/pocketsmith-skill/pkg/config"
	"github.com/lextoumbourou/pocketsmith-skill/pkg/pocketsmith"
)

// newClient loads configuration and constructs an API client. Missing
// credentials surface here, before any network activity.
func newClient(opts *rootOptions) (*pocketsmith.Client, error) {
	cfg, err := config.Load(opts.cfgFile)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return pocketsmith.NewClient(pocketsmith.ClientConfig{
		BaseURL:      cfg.PocketSmith.APIURL,
		DeveloperKey: cfg.PocketSmith.DeveloperKey,
		Timeout:      cfg.PocketSmith.Timeout,
	})
}

// writeResult pretty-prints a raw API response. A nil message (204 No
// Content) prints a success object instead.
func writeResult(w io.Writer, raw json.RawMessage) error {
	if raw == nil {
		return writeSuccess(w)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	fmt.Fprintln(w, buf.String())
	return nil
}

// writeValue pretty-prints a locally constructed payload.
func writeValue(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format payload: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func writeSuccess(w io.Writer) error {
	return writeValue(w, map[string]string{"status": "success"})
}

// writeErrorJSON prints an error as a JSON object on w. Remote API errors
// carry their status code alongside the message.
func writeErrorJSON(w io.Writer, err error) {
	payload := map[string]any{"error": err.Error()}

	var apiErr *pocketsmith.APIError
	if errors.As(err, &apiErr) {
		payload["error"] = apiErr.Message
		payload["status_code"] = apiErr.StatusCode
	}

	data, marshalErr := json.Marshal(payload)
	if marshalErr != nil {
		fmt.Fprintf(w, `{"error": %q}`+"\n", err.Error())
		return
	}
	fmt.Fprintln(w, string(data))
}

// parseID parses a positional integer ID argument.
func parseID(arg, name string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be an integer", name, arg)
	}
	return id, nil
}
