package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/emiliopalmerini/projectboard/internal/domain"
)

const DefaultChannel = "projectboard:snapshots"

// Message is the JSON payload published for each snapshot.
type Message struct {
	Projects    []domain.Project `json:"projects"`
	PublishedAt time.Time        `json:"published_at"`
}

// Publisher publishes board snapshots on a Redis Pub/Sub channel.
type Publisher struct {
	client  *redis.Client
	channel string
	now     func() time.Time
}

func NewPublisher(client *redis.Client, channel string) *Publisher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &Publisher{
		client:  client,
		channel: channel,
		now:     time.Now,
	}
}

// Dial connects to addr and verifies the connection with a PING.
func Dial(ctx context.Context, addr, channel string) (*Publisher, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return NewPublisher(client, channel), nil
}

func (p *Publisher) Channel() string {
	return p.channel
}

func (p *Publisher) PublishSnapshot(ctx context.Context, projects []domain.Project) error {
	if projects == nil {
		projects = []domain.Project{}
	}
	data, err := json.Marshal(Message{Projects: projects, PublishedAt: p.now().UTC()})
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := p.client.Publish(ctx, p.channel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish snapshot: %w", err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.client.Close()
}
