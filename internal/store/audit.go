// internal/store/audit.go
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"

	"bit-tools/internal/common/errors"
	"bit-tools/internal/common/logger"
	"bit-tools/internal/models"
)

// Audit indexes generation records into Elasticsearch for ad-hoc search.
type Audit struct {
	es    *elasticsearch.Client
	index string
	log   logger.Logger
}

// NewAudit creates an audit indexer writing to the given index.
func NewAudit(es *elasticsearch.Client, index string, log logger.Logger) *Audit {
	return &Audit{
		es:    es,
		index: index,
		log:   log.With(map[string]interface{}{"component": "audit"}),
	}
}

// Index writes one generation record, keyed by its id.
func (a *Audit) Index(ctx context.Context, rec models.GenerationRecord) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return errors.NewAuditIndexFailedError(err)
	}

	res, err := a.es.Index(
		a.index,
		bytes.NewReader(body),
		a.es.Index.WithDocumentID(rec.ID),
		a.es.Index.WithContext(ctx),
	)
	if err != nil {
		return errors.NewAuditIndexFailedError(err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return errors.NewAuditIndexFailedError(fmt.Errorf("index response: %s", res.Status()))
	}
	return nil
}
