package v1handler

import (
	"fmt"
	"io"
	"net/http"
	"secondchance/pkg/serrors"

	"github.com/go-faster/jx"
)

// maxBodyBytes bounds the update request body.
const maxBodyBytes = 64 << 10

// CheckLink returns the verdict for the url query parameter.
func (h Handler) CheckLink(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("url")
	if raw == "" {
		h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "missing url query parameter"))

		return
	}

	verdict := h.deps.Checker.CheckLink(r.Context(), raw)
	writeJSON(w, http.StatusOK, EncodeVerdict(verdict))
}

// UpdateLink marks the url from the request body as safe.
func (h Handler) UpdateLink(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "could not read body"))

		return
	}

	raw, err := DecodeUpdateRequest(body)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	ack := h.deps.Checker.UpdateLink(r.Context(), raw)
	writeJSON(w, http.StatusOK, EncodeAck(ack))
}

// DecodeUpdateRequest reads {"url": "..."} and returns the url.
func DecodeUpdateRequest(body []byte) (string, error) {
	var raw string
	err := jx.DecodeBytes(body).Obj(func(d *jx.Decoder, key string) error {
		if key != "url" {
			return d.Skip()
		}

		s, err := d.Str()
		if err != nil {
			return fmt.Errorf("url must be a string: %w", err)
		}
		raw = s

		return nil
	})
	if err != nil {
		return "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid payload")
	}
	if raw == "" {
		return "", serrors.With(serrors.ErrBadRequest, "invalid payload: missing url")
	}

	return raw, nil
}
