package filesystem

import (
	"context"
	"strings"

	"github.com/wardfs/wardfs/internal/infrastructure/logging"
	"github.com/wardfs/wardfs/internal/infrastructure/monitoring"
	"github.com/wardfs/wardfs/internal/sandbox"
	"github.com/wardfs/wardfs/internal/types"
)

// Provider implements sandboxed filesystem tools
type Provider struct {
	ops       *Ops
	basic     *BasicOps
	directory *DirectoryOps
	search    *SearchOps
	metadata  *MetadataOps
	sandbox   *sandbox.Sandbox
}

// NewProvider creates a filesystem provider over an established sandbox
func NewProvider(sb *sandbox.Sandbox, logger *logging.Logger) *Provider {
	ops := &Ops{Sandbox: sb, Logger: logger.Named("filesystem")}
	return &Provider{
		ops:       ops,
		basic:     &BasicOps{ops},
		directory: &DirectoryOps{ops},
		search:    &SearchOps{ops},
		metadata:  &MetadataOps{ops},
		sandbox:   sb,
	}
}

// WithMetrics attaches a collector so sandbox rejections are counted
func (p *Provider) WithMetrics(m *monitoring.Metrics) *Provider {
	p.ops.Metrics = m
	return p
}

// Definition returns service metadata
func (p *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, p.basic.GetTools()...)
	tools = append(tools, p.directory.GetTools()...)
	tools = append(tools, p.search.GetTools()...)
	tools = append(tools, p.metadata.GetTools()...)
	tools = append(tools, types.Tool{
		ID:          "filesystem.roots",
		Name:        "List Allowed Directories",
		Description: "List the directories this server is allowed to access",
		Returns:     "string",
	})

	return types.Service{
		ID:          "filesystem",
		Name:        "Filesystem Service",
		Description: "Read-only file operations confined to configured directories",
		Category:    types.CategoryFilesystem,
		Capabilities: []string{
			"read", "list", "tree", "search", "glob", "metadata",
		},
		Tools: tools,
	}
}

// Execute runs a filesystem tool
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "filesystem.read":
		return p.basic.Read(ctx, params, appCtx)
	case "filesystem.read_multiple":
		return p.basic.ReadMultiple(ctx, params, appCtx)
	case "filesystem.list":
		return p.directory.List(ctx, params, appCtx)
	case "filesystem.tree":
		return p.directory.Tree(ctx, params, appCtx)
	case "filesystem.search":
		return p.search.Search(ctx, params, appCtx)
	case "filesystem.glob":
		return p.search.Glob(ctx, params, appCtx)
	case "filesystem.info":
		return p.metadata.Info(ctx, params, appCtx)
	case "filesystem.mime":
		return p.metadata.MIME(ctx, params, appCtx)
	case "filesystem.roots":
		return p.roots()
	default:
		return Failure("unknown tool: " + toolID)
	}
}

func (p *Provider) roots() (*types.Result, error) {
	roots := p.sandbox.Roots()
	return Success(map[string]interface{}{
		"content": strings.Join(roots, "\n"),
		"roots":   roots,
		"count":   len(roots),
	})
}
