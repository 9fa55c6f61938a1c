package domain

// PositionKind says what kind of block an ad slot follows.
type PositionKind string

const (
	AfterParagraph PositionKind = "after-paragraph"
	AfterHeading   PositionKind = "after-heading"
	AfterList      PositionKind = "after-list"
	AfterImage     PositionKind = "after-image"
)

// AdPlacement marks one insertion point inside an article body. BlockIndex is
// a 0-based index into the parsed block sequence; the auxiliary content goes
// immediately after that block.
type AdPlacement struct {
	PositionKind PositionKind `json:"positionKind"`
	BlockIndex   int          `json:"blockIndex"`
}
