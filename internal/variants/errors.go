package variants

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes variant resolution errors.
type ErrorCode string

const (
	// CodeUnknownVariant indicates a token matched no rule at all.
	CodeUnknownVariant ErrorCode = "UNKNOWN_VARIANT"

	// CodeBadTilingVariant indicates a syntactically valid token that
	// is incompatible with the tile's tiling category.
	CodeBadTilingVariant ErrorCode = "BAD_TILING_VARIANT"

	// CodeBadPaletteIndex indicates a palette coordinate outside the
	// 7x5 palette.
	CodeBadPaletteIndex ErrorCode = "BAD_PALETTE_INDEX"

	// CodeBadMetaVariant indicates a meta depth outside the allowed
	// range.
	CodeBadMetaVariant ErrorCode = "BAD_META_VARIANT"

	// CodeTileNotText indicates a text-only token applied to an
	// object tile.
	CodeTileNotText ErrorCode = "TILE_NOT_TEXT"

	// CodeBadLetterVariant indicates letter styling requested for a
	// word too long to render as letters.
	CodeBadLetterVariant ErrorCode = "BAD_LETTER_VARIANT"

	// CodeTileNotFound indicates an object tile with no metadata
	// record.
	CodeTileNotFound ErrorCode = "TILE_NOT_FOUND"

	// CodeVariant is the catch-all for ad hoc rule rejections.
	CodeVariant ErrorCode = "VARIANT_ERROR"
)

// Error is a variant resolution failure. These represent an invalid
// user-supplied tile description, never a transient fault, so they are
// not retried: any Error aborts resolution of the whole grid.
type Error struct {
	Code    ErrorCode
	Tile    string // tile name, when known
	Token   string // offending modifier token, when applicable
	Tiling  string // the tile's actual tiling category, or "<missing>"
	Message string
}

func (e *Error) Error() string {
	switch {
	case e.Tiling != "":
		return fmt.Sprintf("%s: tile %q does not support variant %q (tiling is %s)", e.Code, e.Tile, e.Token, e.Tiling)
	case e.Token != "":
		return fmt.Sprintf("%s: tile %q: variant %q: %s", e.Code, e.Tile, e.Token, e.Message)
	case e.Tile != "":
		return fmt.Sprintf("%s: tile %q: %s", e.Code, e.Tile, e.Message)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

// IsVariantError reports whether err is any engine Error. The
// valid-variant probe uses this to swallow structural rejections while
// letting programming errors propagate.
func IsVariantError(err error) bool {
	var ve *Error
	return errors.As(err, &ve)
}

// CodeOf extracts the error code from a wrapped Error, or "" when err
// is not one.
func CodeOf(err error) ErrorCode {
	var ve *Error
	if errors.As(err, &ve) {
		return ve.Code
	}
	return ""
}

func errUnknownVariant(tile, token string) *Error {
	return &Error{Code: CodeUnknownVariant, Tile: tile, Token: token, Message: "no rule matches"}
}

func errBadTilingVariant(tile, token, tiling string) *Error {
	return &Error{Code: CodeBadTilingVariant, Tile: tile, Token: token, Tiling: tiling}
}

func errBadPaletteIndex(tile, token string) *Error {
	return &Error{Code: CodeBadPaletteIndex, Tile: tile, Token: token, Message: "palette index out of range"}
}

func errBadMetaVariant(tile, token string, depth int) *Error {
	return &Error{Code: CodeBadMetaVariant, Tile: tile, Token: token, Message: fmt.Sprintf("meta depth %d out of range", depth)}
}

func errTileNotText(tile, token string) *Error {
	return &Error{Code: CodeTileNotText, Tile: tile, Token: token, Message: "only text tiles support this variant"}
}

func errBadLetterVariant(tile, token string) *Error {
	return &Error{Code: CodeBadLetterVariant, Tile: tile, Token: token, Message: "only 1 or 2 letter words can use letter style"}
}

func errTileNotFound(tile string) *Error {
	return &Error{Code: CodeTileNotFound, Tile: tile, Message: "no tile data found"}
}

func errVariant(tile, token, format string, args ...any) *Error {
	return &Error{Code: CodeVariant, Tile: tile, Token: token, Message: fmt.Sprintf(format, args...)}
}
