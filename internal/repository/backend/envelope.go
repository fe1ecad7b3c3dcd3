package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"go-talent-session/internal/domain"
	"go-talent-session/pkg/apperror"
)

// unwrap strips the optional {success, data} envelope. Bare arrays, bare
// objects and flat envelopes such as {success, updated} pass through whole.
// success=false is reported as an error.
func unwrap(body []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return trimmed, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, apperror.Network(fmt.Errorf("decode envelope: %w", err))
	}

	successRaw, hasSuccess := fields["success"]
	data, hasData := fields["data"]
	if !hasSuccess && !hasData {
		return trimmed, nil
	}

	if hasSuccess {
		var ok bool
		if err := json.Unmarshal(successRaw, &ok); err == nil && !ok {
			return nil, apperror.New(http.StatusBadGateway, apperror.KindNetwork,
				orDefault(messageOf(trimmed), "Backend reported failure"), nil)
		}
	}
	if !hasData {
		return trimmed, nil
	}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, nil
	}
	return data, nil
}

// decodePage normalises a list payload into Page. Accepted forms: a bare
// array, or an object {items|data|results, total}.
func decodePage[T any](payload json.RawMessage) (domain.Page[T], error) {
	var page domain.Page[T]
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		page.Items = []T{}
		return page, nil
	}

	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &page.Items); err != nil {
			return page, apperror.Network(fmt.Errorf("decode list: %w", err))
		}
		page.Total = len(page.Items)
	case '{':
		var obj struct {
			Items   []T  `json:"items"`
			Data    []T  `json:"data"`
			Results []T  `json:"results"`
			Total   *int `json:"total"`
		}
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return page, apperror.Network(fmt.Errorf("decode list: %w", err))
		}
		switch {
		case obj.Items != nil:
			page.Items = obj.Items
		case obj.Data != nil:
			page.Items = obj.Data
		default:
			page.Items = obj.Results
		}
		page.Total = len(page.Items)
		if obj.Total != nil {
			page.Total = *obj.Total
		}
	default:
		return page, apperror.Network(fmt.Errorf("decode list: unexpected payload %.32q", trimmed))
	}

	if page.Items == nil {
		page.Items = []T{}
	}
	return page, nil
}

func messageOf(body []byte) string {
	var m struct {
		Message string `json:"message"`
		Error   any    `json:"error"`
	}
	if json.Unmarshal(body, &m) != nil {
		return ""
	}
	if m.Message != "" {
		return m.Message
	}
	if s, ok := m.Error.(string); ok {
		return s
	}
	return ""
}
