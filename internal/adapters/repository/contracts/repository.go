package contracts

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/trebuchet-org/catapult/internal/config"
	"github.com/trebuchet-org/catapult/internal/domain"
	"github.com/trebuchet-org/catapult/internal/usecase"
)

// Artifact directories relative to the project root
const (
	HardhatArtifactsDir = "artifacts"
	FoundryOutDir       = "out"
)

const maxSuggestions = 3

// Repository discovers and indexes compiled contract artifacts
type Repository struct {
	projectRoot string
	contracts   map[string]*entry   // key: "source:Contract"
	names       map[string][]string // key: contract name, value: fully qualified names
	log         *slog.Logger
	mu          sync.RWMutex
	indexed     bool
}

// NewRepository creates a new artifact repository rooted at projectRoot
func NewRepository(projectRoot string, log *slog.Logger) *Repository {
	return &Repository{
		projectRoot: projectRoot,
		log:         log,
		contracts:   make(map[string]*entry),
		names:       make(map[string][]string),
	}
}

// ProvideRepository creates a Repository for Wire dependency injection
func ProvideRepository(cfg *config.RuntimeConfig, log *slog.Logger) *Repository {
	return NewRepository(cfg.ProjectRoot, log)
}

// Index walks the Hardhat and Foundry artifact trees once
func (r *Repository) Index() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexed {
		return nil
	}

	r.contracts = make(map[string]*entry)
	r.names = make(map[string][]string)

	// Foundry first so a Hardhat artifact for the same contract replaces it
	trees := []struct {
		dir   string
		parse func(string, []byte) *entry
	}{
		{filepath.Join(r.projectRoot, FoundryOutDir), parseFoundry},
		{filepath.Join(r.projectRoot, HardhatArtifactsDir), parseHardhat},
	}

	for _, tree := range trees {
		if _, err := os.Stat(tree.dir); os.IsNotExist(err) {
			continue
		}
		if err := r.walk(tree.dir, tree.parse); err != nil {
			return fmt.Errorf("failed to index %s: %w", tree.dir, err)
		}
	}

	for name, fqns := range r.names {
		fqns = lo.Uniq(fqns)
		sort.Strings(fqns)
		r.names[name] = fqns
	}

	r.log.Debug("indexed artifacts", "root", r.projectRoot, "contracts", len(r.contracts))
	r.indexed = true
	return nil
}

func (r *Repository) walk(dir string, parse func(string, []byte) *entry) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == "build-info" {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".json" || strings.HasSuffix(path, ".dbg.json") {
			return nil
		}

		data, err := readFile(path)
		if err != nil {
			return err
		}

		e := parse(path, data)
		if e == nil {
			r.log.Debug("skipping non-artifact json", "path", path)
			return nil
		}

		r.contracts[e.fqn()] = e
		r.names[e.name] = append(r.names[e.name], e.fqn())
		return nil
	})
}

// resolve finds the entry for a bare or fully qualified name. Callers hold the read lock.
func (r *Repository) resolve(name string) (*entry, error) {
	if strings.Contains(name, ":") {
		if e, ok := r.contracts[name]; ok {
			return e, nil
		}
		return nil, r.notFound(name)
	}

	fqns := r.names[name]
	switch len(fqns) {
	case 0:
		return nil, r.notFound(name)
	case 1:
		return r.contracts[fqns[0]], nil
	default:
		return nil, &domain.AmbiguousContractError{Name: name, Matches: fqns}
	}
}

func (r *Repository) notFound(name string) error {
	candidates := lo.Keys(r.names)
	sort.Strings(candidates)

	var suggestions []string
	for _, m := range fuzzy.Find(name, candidates) {
		suggestions = append(suggestions, m.Str)
		if len(suggestions) == maxSuggestions {
			break
		}
	}
	return &domain.ContractNotFoundError{Name: name, Suggestions: suggestions}
}

// GetFactory resolves a contract name to a deployable factory
func (r *Repository) GetFactory(ctx context.Context, name string) (*domain.ContractFactory, error) {
	if err := r.Index(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, err := r.resolve(name)
	if err != nil {
		return nil, err
	}

	if !e.deployable() {
		return nil, fmt.Errorf("%s: %w", e.fqn(), domain.ErrNotDeployable)
	}
	if !e.linked {
		return nil, fmt.Errorf("%s: %w", e.fqn(), domain.ErrUnlinkedLibraries)
	}

	parsed, err := abi.JSON(bytes.NewReader(e.abi))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI of %s: %w", e.fqn(), err)
	}

	code, err := hex.DecodeString(strings.TrimPrefix(e.bytecode, "0x"))
	if err != nil {
		return nil, fmt.Errorf("failed to decode bytecode of %s: %w", e.fqn(), err)
	}

	rel, _ := filepath.Rel(r.projectRoot, e.path)
	return &domain.ContractFactory{
		Name:          e.name,
		SourceName:    e.sourceName,
		ArtifactPath:  rel,
		BuildInfoPath: e.buildInfoPath,
		Format:        e.format,
		ABI:           parsed,
		Bytecode:      code,
	}, nil
}

// ListContracts returns every indexed artifact ordered by fully qualified name
func (r *Repository) ListContracts(ctx context.Context) ([]domain.ContractInfo, error) {
	if err := r.Index(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]domain.ContractInfo, 0, len(r.contracts))
	for _, e := range r.contracts {
		rel, _ := filepath.Rel(r.projectRoot, e.path)
		infos = append(infos, domain.ContractInfo{
			Name:       e.name,
			SourceName: e.sourceName,
			Path:       rel,
			Format:     e.format,
			Deployable: e.deployable() && e.linked,
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].FullyQualifiedName() < infos[j].FullyQualifiedName()
	})
	return infos, nil
}

// GetVerificationSource locates the compiler standard JSON input for a contract
func (r *Repository) GetVerificationSource(ctx context.Context, name string) (*domain.VerificationSource, error) {
	if err := r.Index(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	e, err := r.resolve(name)
	r.mu.RUnlock()
	if err != nil {
		return nil, err
	}

	path := e.buildInfoPath
	if path == "" {
		path, err = r.findBuildInfo(e)
		if err != nil {
			return nil, err
		}
	}

	data, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read build info: %w", err)
	}

	var info buildInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("failed to parse build info %s: %w", path, err)
	}
	if len(info.Input) == 0 {
		return nil, fmt.Errorf("build info %s has no compiler input", path)
	}

	version := lo.CoalesceOrEmpty(info.SolcLongVersion, e.compiler, info.SolcVersion)
	if version == "" {
		return nil, fmt.Errorf("cannot determine compiler version for %s", e.fqn())
	}

	return &domain.VerificationSource{
		ContractName:      e.fqn(),
		CompilerVersion:   version,
		StandardJSONInput: info.Input,
	}, nil
}

// findBuildInfo scans the build-info directory of the artifact's tree for
// the compilation that contains its source file.
func (r *Repository) findBuildInfo(e *entry) (string, error) {
	treeDir := FoundryOutDir
	if e.format == domain.ArtifactFormatHardhat {
		treeDir = HardhatArtifactsDir
	}
	dir := filepath.Join(r.projectRoot, treeDir, "build-info")

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return "", err
	}

	for _, path := range files {
		data, err := readFile(path)
		if err != nil {
			continue
		}
		var probe struct {
			Input struct {
				Sources map[string]json.RawMessage `json:"sources"`
			} `json:"input"`
		}
		if json.Unmarshal(data, &probe) != nil {
			continue
		}
		if _, ok := probe.Input.Sources[e.sourceName]; ok {
			return path, nil
		}
	}

	return "", fmt.Errorf("no build info containing %s under %s (rebuild with build info enabled)", e.sourceName, dir)
}

func readFile(path string) ([]byte, error) {
	return os.ReadFile(path) //nolint:gosec // artifact paths come from the project tree
}

// Ensure the adapter implements the use case port
var _ usecase.ArtifactRepository = (*Repository)(nil)
