package comment

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/rickicode/mikrotik-billing/internal/constants"
	"github.com/rickicode/mikrotik-billing/internal/entities"
)

const (
	voucherSeparator = "|"
	voucherMinParts  = 4
)

// FormatVoucherComment encodes voucher state as VOUCHER_SYSTEM|price|firstLogin|validUntil.
// Unset timestamps are written as 0.
func FormatVoucherComment(priceSell float64, firstLogin, validUntil *int64) string {
	return strings.Join([]string{
		constants.VoucherCommentPrefix,
		strconv.FormatFloat(priceSell, 'f', -1, 64),
		strconv.FormatInt(lo.FromPtr(firstLogin), 10),
		strconv.FormatInt(lo.FromPtr(validUntil), 10),
	}, voucherSeparator)
}

// FormatVoucher encodes a decoded voucher comment back to text.
func FormatVoucher(c entities.VoucherComment) string {
	return FormatVoucherComment(c.PriceSell, c.FirstLogin, c.ValidUntil)
}

// ParseVoucherComment decodes a voucher comment. ok is false when text is not a voucher comment.
func ParseVoucherComment(text string, now time.Time) (c entities.VoucherComment, ok bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, constants.VoucherCommentPrefix+voucherSeparator) {
		return c, false
	}

	parts := strings.Split(text, voucherSeparator)
	if len(parts) < voucherMinParts {
		return c, false
	}

	// operators sometimes edit the price by hand, a broken price is read as zero
	c.PriceSell, _ = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	c.FirstLogin = parseTimestamp(parts[2])
	c.ValidUntil = parseTimestamp(parts[3])
	c.Status, c.TimeRemaining = voucherStatus(c.FirstLogin, c.ValidUntil, now)

	return c, true
}

func parseTimestamp(value string) *int64 {
	ts, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || ts <= 0 {
		return nil
	}

	return &ts
}

func voucherStatus(firstLogin, validUntil *int64, now time.Time) (status entities.VoucherStatus, remaining int64) {
	if firstLogin == nil {
		return entities.VoucherStatusAvailable, 0
	}

	if validUntil == nil {
		return entities.VoucherStatusActive, 0
	}

	nowUnix := now.Unix()
	if nowUnix > *validUntil {
		return entities.VoucherStatusExpired, 0
	}

	return entities.VoucherStatusActive, *validUntil - nowUnix
}

// FormatGenericComment JSON-encodes data. It never fails: values json can't encode
// fall back to their fmt representation.
func FormatGenericComment(data any) string {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Sprintf("%v", data)
	}

	return string(out)
}

// ParseGenericComment decodes a JSON object comment. Anything else is returned as
// {"type": "raw", "comment": text}.
func ParseGenericComment(text string) map[string]any {
	data, ok := decodeObject(text)
	if !ok {
		return map[string]any{
			"type":    constants.CommentTypeRaw,
			"comment": text,
		}
	}

	return data
}

func decodeObject(text string) (data map[string]any, ok bool) {
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &data); err != nil || data == nil {
		return nil, false
	}

	return data, true
}

// FormatPPPoEComment encodes PPPoE secret metadata.
func FormatPPPoEComment(c entities.PPPoEComment) string {
	return FormatGenericComment(struct {
		Type string `json:"type"`
		entities.PPPoEComment
	}{
		Type:         constants.CommentTypePPPoE,
		PPPoEComment: c,
	})
}

// ParseComment decodes any comment into its tagged variant.
func ParseComment(text string, now time.Time) entities.Comment { //nolint:ireturn // tagged variant
	if voucher, ok := ParseVoucherComment(text, now); ok {
		return voucher
	}

	data, ok := decodeObject(text)
	if !ok {
		return entities.RawComment{Text: text}
	}

	// a JSON object tagged "raw" is kept as generic so it re-encodes unchanged.
	commentType, _ := data["type"].(string)
	if commentType == constants.CommentTypePPPoE {
		return entities.PPPoEComment{
			CustomerID:     stringField(data, "customer_id"),
			SubscriptionID: stringField(data, "subscription_id"),
			CreatedAt:      int64Field(data, "created_at"),
		}
	}

	if lo.IsEmpty(commentType) {
		return entities.RawComment{Text: text}
	}

	return entities.GenericComment{
		Type: commentType,
		Data: data,
	}
}

func stringField(data map[string]any, key string) string {
	switch value := data[key].(type) {
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return ""
	}
}

func int64Field(data map[string]any, key string) int64 {
	switch value := data[key].(type) {
	case float64:
		return int64(value)
	case string:
		parsed, _ := strconv.ParseInt(value, 10, 64)
		return parsed
	default:
		return 0
	}
}
