package embedding

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
)

// QdrantCache is a persistent exact-match embedding cache. Points are keyed
// by a deterministic UUID derived from the (model version, text) hash, so a
// text embedded once survives process restarts. Misses fall through to the
// wrapped provider and are written back.
type QdrantCache struct {
	client     *qdrant.Client
	collection string
	vectorSize uint64
	inner      Provider
}

func NewQdrantCache(urlStr, apiKey, collection string, vectorSize uint64, inner Provider) (*QdrantCache, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// gRPC port, not the REST one
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &QdrantCache{
		client:     client,
		collection: collection,
		vectorSize: vectorSize,
		inner:      inner,
	}, nil
}

// InitCollection ensures the cache collection exists.
func (q *QdrantCache) InitCollection(ctx context.Context) error {
	exists, err := q.client.CollectionExists(ctx, q.collection)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     q.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	log.Printf("✅ Qdrant embedding cache collection '%s' created\n", q.collection)
	return nil
}

// Embed implements Provider.
func (q *QdrantCache) Embed(ctx context.Context, text string) ([]float32, error) {
	id := q.pointID(text)

	if vec, ok := q.lookup(ctx, id); ok {
		return vec, nil
	}

	vec, err := q.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}

	// A failed write-back only costs a future cache miss.
	if err := q.store(ctx, id, vec); err != nil {
		log.Printf("⚠️  Failed to cache embedding in Qdrant: %v\n", err)
	}

	return vec, nil
}

// ModelVersion implements Provider.
func (q *QdrantCache) ModelVersion() string {
	return q.inner.ModelVersion()
}

func (q *QdrantCache) pointID(text string) string {
	key := CacheKey(q.inner.ModelVersion(), text)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)).String()
}

func (q *QdrantCache) lookup(ctx context.Context, id string) ([]float32, bool) {
	points, err := q.client.Get(ctx, &qdrant.GetPoints{
		CollectionName: q.collection,
		Ids:            []*qdrant.PointId{qdrant.NewID(id)},
		WithVectors: &qdrant.WithVectorsSelector{
			SelectorOptions: &qdrant.WithVectorsSelector_Enable{Enable: true},
		},
	})
	if err != nil {
		log.Printf("⚠️  Qdrant cache lookup failed: %v\n", err)
		return nil, false
	}

	if len(points) == 0 {
		return nil, false
	}

	vec := points[0].GetVectors().GetVector().GetData()
	if len(vec) == 0 {
		return nil, false
	}

	return vec, true
}

func (q *QdrantCache) store(ctx context.Context, id string, vec []float32) error {
	point := &qdrant.PointStruct{
		Id:      qdrant.NewID(id),
		Vectors: qdrant.NewVectors(vec...),
		Payload: qdrant.NewValueMap(map[string]interface{}{
			"model_version": q.inner.ModelVersion(),
		}),
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collection,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert point: %w", err)
	}

	return nil
}
