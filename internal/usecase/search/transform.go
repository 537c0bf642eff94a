package search

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/imago-cloud/mediasearch/internal/domain/search/hit"
	"github.com/imago-cloud/mediasearch/internal/domain/search/result"
)

const (
	mediaURLBase      = "https://www.imago-images.de/bild"
	imageNumberLength = 10
	maxTitleLength    = 120

	defaultFilePrefix = "s"
	defaultFileFormat = "jpg"
)

// transformHit enriches a raw hit into a client-facing result. A hit
// missing its source database or image number is skipped with a log,
// never turned into a malformed URL and never failing the whole page.
func transformHit(h *hit.Hit, logger *zap.Logger) (result.Result, bool) {
	database, ok := h.StringAttr("db")
	if !ok {
		logger.Warn("hit missing source database, skipping", zap.String("id", h.ID()))
		return result.Result{}, false
	}

	imageNumber, ok := imageNumberAttr(h)
	if !ok {
		logger.Warn("hit missing image number, skipping", zap.String("id", h.ID()))
		return result.Result{}, false
	}

	mediaURL := generateImageURL(database, imageNumber, defaultFilePrefix, defaultFileFormat, logger)

	date, _ := h.StringAttr("datum")
	photographer, _ := h.StringAttr("fotografen")
	width, _ := h.IntAttr("breite")
	height, _ := h.IntAttr("hoehe")

	title, _ := h.StringAttr("suchtext")
	title = truncateTitle(title)

	return result.New(
		h.ID(), h.Score(),
		imageNumber, date, photographer, title,
		width, height,
		database, mediaURL,
	), true
}

// imageNumberAttr accepts the image number as either a string or a
// JSON number, normalizing to string form.
func imageNumberAttr(h *hit.Hit) (string, bool) {
	if s, ok := h.StringAttr("bildnummer"); ok {
		return s, true
	}
	if n, ok := h.IntAttr("bildnummer"); ok {
		return strconv.Itoa(n), true
	}
	return "", false
}

// generateImageURL derives the thumbnail URL for an image.
func generateImageURL(database, imageNumber, filePrefix, fileFormat string, logger *zap.Logger) string {
	return fmt.Sprintf("%s/%s/%s/%s.%s",
		mediaURLBase,
		databaseCode(database, logger),
		formatImageNumber(imageNumber, logger),
		filePrefix,
		fileFormat,
	)
}

// databaseCode maps a source database to its URL code. Unknown values
// fall back to "sp" with a warn log instead of a silent fallthrough.
func databaseCode(database string, logger *zap.Logger) string {
	switch database {
	case "stock":
		return "st"
	case "sp":
		return "sp"
	default:
		logger.Warn("unknown source database, defaulting to sp", zap.String("db", database))
		return "sp"
	}
}

// formatImageNumber left-pads the image number with zeros to 10 chars.
// Longer numbers pass through unchanged: truncating could collide two
// distinct images, and rejecting would drop the hit for a formatting
// quirk the engine already accepted.
func formatImageNumber(imageNumber string, logger *zap.Logger) string {
	if len(imageNumber) > imageNumberLength {
		logger.Warn("image number exceeds expected length",
			zap.String("bildnummer", imageNumber))
		return imageNumber
	}
	if len(imageNumber) == imageNumberLength {
		return imageNumber
	}
	return strings.Repeat("0", imageNumberLength-len(imageNumber)) + imageNumber
}

func truncateTitle(title string) string {
	if len(title) <= maxTitleLength {
		return title
	}
	return title[:maxTitleLength]
}
