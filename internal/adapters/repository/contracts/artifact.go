package contracts

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"github.com/trebuchet-org/catapult/internal/domain"
)

// hardhatArtifact is the hh-sol-artifact-1 layout under artifacts/
type hardhatArtifact struct {
	Format         string          `json:"_format"`
	ContractName   string          `json:"contractName"`
	SourceName     string          `json:"sourceName"`
	ABI            json.RawMessage `json:"abi"`
	Bytecode       string          `json:"bytecode"`
	LinkReferences map[string]any  `json:"linkReferences"`
}

// hardhatDebugFile is the <Name>.dbg.json sidecar pointing at build info
type hardhatDebugFile struct {
	Format    string `json:"_format"`
	BuildInfo string `json:"buildInfo"`
}

// foundryArtifact is the forge layout under out/
type foundryArtifact struct {
	ABI      json.RawMessage `json:"abi"`
	Bytecode struct {
		Object         string         `json:"object"`
		LinkReferences map[string]any `json:"linkReferences"`
	} `json:"bytecode"`
	Metadata struct {
		Compiler struct {
			Version string `json:"version"`
		} `json:"compiler"`
		Settings struct {
			CompilationTarget map[string]string `json:"compilationTarget"`
		} `json:"settings"`
	} `json:"metadata"`
}

// buildInfo is the shared subset of Hardhat and Foundry build-info files
type buildInfo struct {
	SolcVersion     string          `json:"solcVersion"`
	SolcLongVersion string          `json:"solcLongVersion"`
	Input           json.RawMessage `json:"input"`
}

// entry is one indexed artifact
type entry struct {
	name          string
	sourceName    string
	path          string // absolute artifact path
	format        domain.ArtifactFormat
	abi           json.RawMessage
	bytecode      string // hex, possibly with link placeholders
	linked        bool
	buildInfoPath string
	compiler      string
}

func (e *entry) fqn() string {
	return e.sourceName + ":" + e.name
}

func (e *entry) deployable() bool {
	code := strings.TrimPrefix(e.bytecode, "0x")
	return code != ""
}

// parseHardhat returns nil when data is not a Hardhat artifact.
func parseHardhat(path string, data []byte) *entry {
	var art hardhatArtifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil
	}
	if !strings.HasPrefix(art.Format, "hh-sol-artifact") || art.ContractName == "" {
		return nil
	}

	e := &entry{
		name:       art.ContractName,
		sourceName: art.SourceName,
		path:       path,
		format:     domain.ArtifactFormatHardhat,
		abi:        art.ABI,
		bytecode:   art.Bytecode,
		linked:     len(art.LinkReferences) == 0 && !strings.Contains(art.Bytecode, "__$"),
	}

	dbgPath := strings.TrimSuffix(path, ".json") + ".dbg.json"
	if raw, err := readFile(dbgPath); err == nil {
		var dbg hardhatDebugFile
		if json.Unmarshal(raw, &dbg) == nil && dbg.BuildInfo != "" {
			e.buildInfoPath = filepath.Clean(filepath.Join(filepath.Dir(dbgPath), dbg.BuildInfo))
		}
	}

	return e
}

// parseFoundry returns nil when data is not a forge artifact.
func parseFoundry(path string, data []byte) *entry {
	var art foundryArtifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil
	}
	if len(art.ABI) == 0 {
		return nil
	}

	var contractName, sourceName string
	for source, contract := range art.Metadata.Settings.CompilationTarget {
		sourceName = source
		contractName = contract
		break // There should only be one entry
	}
	if contractName == "" {
		return nil
	}

	return &entry{
		name:       contractName,
		sourceName: sourceName,
		path:       path,
		format:     domain.ArtifactFormatFoundry,
		abi:        art.ABI,
		bytecode:   art.Bytecode.Object,
		linked:     len(art.Bytecode.LinkReferences) == 0 && !strings.Contains(art.Bytecode.Object, "__$"),
		compiler:   art.Metadata.Compiler.Version,
	}
}
