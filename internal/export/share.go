package export

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/skip2/go-qrcode"

	"github.com/mytravelspring/rio-nido-complete/internal/model"
)

// ShareParam is the query parameter that carries a shared itinerary.
const ShareParam = "shared"

var ErrInvalidShare = errors.New("invalid share link")

// SharePayload is the summary encoded into a share link. Timestamp is in
// Unix milliseconds.
type SharePayload struct {
	Guest     string            `json:"guest"`
	Days      int               `json:"days"`
	Style     model.TravelStyle `json:"style"`
	Interests []model.Category  `json:"interests"`
	Timestamp int64             `json:"timestamp"`
}

// ShareLink encodes a summary of the itinerary into base's query string.
func ShareLink(base string, prefs model.Preferences, it *model.Itinerary, now time.Time) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse share base: %w", err)
	}
	days := 0
	if it != nil {
		days = len(it.Days)
	}
	payload := SharePayload{
		Guest:     prefs.GuestName,
		Days:      days,
		Style:     prefs.TravelStyle,
		Interests: prefs.Interests,
		Timestamp: now.UnixMilli(),
	}
	if payload.Interests == nil {
		payload.Interests = []model.Category{}
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode share payload: %w", err)
	}

	q := u.Query()
	q.Set(ShareParam, base64.StdEncoding.EncodeToString(raw))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// DecodeShare reads the payload from a share link or from the bare token.
func DecodeShare(link string) (SharePayload, error) {
	var p SharePayload
	token := link
	if strings.Contains(link, "?") {
		u, err := url.Parse(link)
		if err != nil {
			return p, fmt.Errorf("%w: %w", ErrInvalidShare, err)
		}
		token = u.Query().Get(ShareParam)
	}
	if token == "" {
		return p, fmt.Errorf("%w: missing %q parameter", ErrInvalidShare, ShareParam)
	}
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return p, fmt.Errorf("%w: %w", ErrInvalidShare, err)
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("%w: %w", ErrInvalidShare, err)
	}
	return p, nil
}

// ShareQR renders link as a PNG QR code of size pixels.
func ShareQR(link string, size int) ([]byte, error) {
	png, err := qrcode.Encode(link, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}
