// api/audit/repository.go
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

const indexName = "auth-events"

type Repository interface {
	LogEvent(ctx context.Context, event AuthEvent) error
	QueryEvents(ctx context.Context, from, to time.Time, subject string, tenantID uint) ([]AuthEvent, error)
}

type ElasticsearchRepository struct {
	esClient *elasticsearch.Client
}

// NewElasticsearchRepository creates a new repository with a given Elasticsearch client URL.
func NewElasticsearchRepository(esURL string) (*ElasticsearchRepository, error) {
	cfg := elasticsearch.Config{
		Addresses: []string{esURL},
	}
	esClient, err := elasticsearch.NewClient(cfg)
	if err != nil {
		return nil, err
	}
	return &ElasticsearchRepository{esClient: esClient}, nil
}

// LogEvent indexes one auth event.
func (r *ElasticsearchRepository) LogEvent(ctx context.Context, event AuthEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	req := esapi.IndexRequest{
		Index: indexName,
		Body:  strings.NewReader(string(data)),
	}

	res, err := req.Do(ctx, r.esClient)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing document: %s", res.String())
	}

	return nil
}

// QueryEvents searches auth events within a time frame, optionally filtered
// by subject and tenant.
func (r *ElasticsearchRepository) QueryEvents(ctx context.Context, from, to time.Time, subject string, tenantID uint) ([]AuthEvent, error) {
	must := []interface{}{
		map[string]interface{}{
			"range": map[string]interface{}{
				"timestamp": map[string]interface{}{
					"gte": from.Format(time.RFC3339),
					"lte": to.Format(time.RFC3339),
				},
			},
		},
	}
	if subject != "" {
		must = append(must, map[string]interface{}{
			"match": map[string]interface{}{"subject": subject},
		})
	}
	if tenantID != 0 {
		must = append(must, map[string]interface{}{
			"term": map[string]interface{}{"tenant_id": tenantID},
		})
	}

	query := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{"must": must},
		},
	}

	var buf strings.Builder
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, err
	}

	res, err := r.esClient.Search(
		r.esClient.Search.WithContext(ctx),
		r.esClient.Search.WithIndex(indexName),
		r.esClient.Search.WithBody(strings.NewReader(buf.String())),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("error searching documents: %s", res.String())
	}

	var rmap map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&rmap); err != nil {
		return nil, err
	}

	var events []AuthEvent
	hits, ok := rmap["hits"].(map[string]interface{})
	if !ok {
		return events, nil
	}
	hitList, ok := hits["hits"].([]interface{})
	if !ok {
		return events, nil
	}
	for _, h := range hitList {
		hit, ok := h.(map[string]interface{})
		if !ok {
			continue
		}
		source, err := json.Marshal(hit["_source"])
		if err != nil {
			continue
		}
		var event AuthEvent
		if err := json.Unmarshal(source, &event); err != nil {
			continue
		}
		events = append(events, event)
	}
	return events, nil
}
