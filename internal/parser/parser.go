package parser

import (
	"encoding/json"
	"os"

	log "github.com/sirupsen/logrus"

	"liqstats/internal/models"
)

type Parser interface {
	ParseJSON(filePath string) []models.LiquidationEvent
}

type JSONParser struct{}

func NewJSONParser() *JSONParser {
	return &JSONParser{}
}

// ParseJSON reads a JSON array of liquidation events from filePath. A
// missing file or malformed JSON degrades to an empty slice with a logged
// message; callers decide what emptiness means. No retries.
func (p *JSONParser) ParseJSON(filePath string) []models.LiquidationEvent {
	data, err := os.ReadFile(filePath)
	if err != nil {
		log.WithField("file", filePath).Warn("File not found")
		return nil
	}

	var events []models.LiquidationEvent
	if err := json.Unmarshal(data, &events); err != nil {
		log.WithField("file", filePath).WithError(err).Warn("Invalid JSON in file")
		return nil
	}

	log.WithFields(log.Fields{
		"file":    filePath,
		"records": len(events),
	}).Info("Loaded liquidation events")

	return events
}
