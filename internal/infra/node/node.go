package node

import (
	"os"
	"sync"
	"time"

	"dataforge-server/internal/infra/utils"

	"go.opentelemetry.io/otel/attribute"
)

// Node describes the running server process.
type Node struct {
	ID         string
	Hostname   string
	Version    string
	CommitHash string
	StartedAt  time.Time
}

// Version and CommitHash are set at build time with -ldflags.
var Version = "development"
var CommitHash = "unknown"

var (
	current     *Node
	currentOnce sync.Once
)

// GetNodeInfo returns the information of the current process. The result never changes.
func GetNodeInfo() *Node {
	currentOnce.Do(func() {
		current = &Node{
			ID:         utils.GenerateUUID(),
			Hostname:   hostname(),
			Version:    Version,
			CommitHash: CommitHash,
			StartedAt:  time.Now(),
		}
	})
	copied := *current
	return &copied
}

// Attributes describes the node as OpenTelemetry resource attributes.
func (n *Node) Attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.String("service.instance.id", n.ID),
		attribute.String("service.version", n.Version),
		attribute.String("host.name", n.Hostname),
		attribute.String("vcs.commit", n.CommitHash),
	}
}

func (n *Node) Uptime() time.Duration {
	return time.Since(n.StartedAt)
}

func hostname() string {
	name, err := os.Hostname()
	if err != nil || name == "" {
		return "localhost"
	}
	return name
}
