package descriptor

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/packforge/pkg/errors"
	"github.com/arthur-debert/packforge/pkg/logging"
	"github.com/arthur-debert/packforge/pkg/types"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// Loader reads descriptor files from a filesystem.
type Loader struct {
	fs              afero.Fs
	version         string
	defaultIncludes []string
}

// Option configures a Loader.
type Option func(*Loader)

// WithVersion makes every loaded file declare exactly this version. An empty
// version accepts any.
func WithVersion(version string) Option {
	return func(l *Loader) {
		l.version = version
	}
}

// WithDefaultIncludes sets the patterns used by a refpackset that declares
// no includes of its own.
func WithDefaultIncludes(patterns []string) Option {
	return func(l *Loader) {
		l.defaultIncludes = patterns
	}
}

// NewLoader creates a loader reading from fs.
func NewLoader(fs afero.Fs, opts ...Option) *Loader {
	l := &Loader{fs: fs}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the descriptor at path together with every file it references
// and returns all packs in declaration order. Refpack files and refpackset
// directories resolve against the directory of this root descriptor, at any
// nesting level.
func (l *Loader) Load(descriptorPath string) ([]types.Pack, error) {
	logger := logging.GetLogger("descriptor")
	done := logging.LogOperationStart(logger, "loadDescriptor")
	defer done()

	root := filepath.Clean(descriptorPath)
	var packs []types.Pack
	if err := l.load(root, filepath.Dir(root), nil, &packs); err != nil {
		return nil, err
	}

	logger.Info().Str("descriptor", descriptorPath).Int("packs", len(packs)).Msg("Packs loaded")
	return packs, nil
}

// Read parses one descriptor file without following its references.
func (l *Loader) Read(file string) (*Document, error) {
	data, err := afero.ReadFile(l.fs, file)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDescriptorRead, "failed to read %s", file).
			WithDetail("file", file)
	}

	var doc *Document
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		doc, err = parseYAML(file, data)
	case ".toml":
		doc, err = parseTOML(file, data)
	default:
		doc, err = parseXML(file, data)
	}
	if err != nil {
		return nil, err
	}

	if l.version != "" && !strings.EqualFold(doc.Version, l.version) {
		return nil, errors.Newf(errors.ErrDescriptorVersion,
			"the file version %q is different from the compiler version %q", doc.Version, l.version).
			WithDetail("file", file).
			WithDetail("expected", l.version).
			WithDetail("found", doc.Version)
	}

	return doc, nil
}

func (l *Loader) load(file, basedir string, chain []string, out *[]types.Pack) error {
	logger := logging.GetLogger("descriptor")

	for _, seen := range chain {
		if seen == file {
			cycle := append(append([]string(nil), chain...), file)
			return errors.Newf(errors.ErrDescriptorCycle, "descriptor %s references itself", file).
				WithDetail("file", file).
				WithDetail("chain", cycle)
		}
	}
	chain = append(append([]string(nil), chain...), file)

	doc, err := l.Read(file)
	if err != nil {
		return err
	}
	if doc.empty() {
		return invalidf(file, "<packs> requires a <pack>, <refpack> or <refpackset>")
	}

	for _, spec := range doc.Packs {
		pack, err := spec.toPack(file)
		if err != nil {
			return err
		}
		*out = append(*out, pack)
		logger.Trace().Str("pack", pack.Name).Str("file", file).Msg("Pack added")
	}

	for _, ref := range doc.RefPacks {
		if ref.File == "" {
			return invalidf(file, "<refpack> requires a file")
		}
		refFile := resolve(basedir, ref.File)
		logger.Debug().Str("file", refFile).Bool("selfcontained", ref.SelfContained).Msg("Reading refpack")
		if err := l.load(refFile, basedir, chain, out); err != nil {
			return err
		}
	}

	for _, set := range doc.RefPackSets {
		if set.Dir == "" {
			return invalidf(file, "<refpackset> requires a dir")
		}
		dir := resolve(basedir, set.Dir)
		isDir, err := afero.IsDir(l.fs, dir)
		if err != nil || !isDir {
			return invalidf(file, "invalid refpackset directory %q", set.Dir).WithDetail("dir", dir)
		}

		patterns := splitList(set.Includes)
		if len(patterns) == 0 {
			patterns = l.defaultIncludes
		}
		if len(patterns) == 0 {
			return invalidf(file, "<refpackset> %q requires includes", set.Dir)
		}

		files, err := l.scan(dir, patterns)
		if err != nil {
			return errors.Wrapf(err, errors.ErrDescriptorInvalid, "failed to scan refpackset %s", dir).
				WithDetail("file", file)
		}
		logger.Debug().Str("dir", dir).Strs("includes", patterns).Int("files", len(files)).Msg("Reading refpackset")

		for _, refFile := range files {
			if err := l.load(refFile, basedir, chain, out); err != nil {
				return err
			}
		}
	}

	return nil
}

// scan returns the regular files below dir whose slash separated relative
// path matches one of the patterns, in lexical order.
func (l *Loader) scan(dir string, patterns []string) ([]string, error) {
	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Wrapf(doublestar.ErrBadPattern, errors.ErrDescriptorInvalid, "invalid include pattern %q", pattern).
				WithDetail("pattern", pattern)
		}
	}

	var files []string
	err := afero.Walk(l.fs, dir, func(file string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, file)
		if err != nil {
			return err
		}
		if matchAny(patterns, filepath.ToSlash(rel)) {
			files = append(files, file)
		}
		return nil
	})
	return files, err
}

// matchAny matches rel against the include patterns. "**" matches zero or
// more directories anywhere in a pattern.
func matchAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}

func resolve(base, file string) string {
	if filepath.IsAbs(file) {
		return filepath.Clean(file)
	}
	return filepath.Join(base, file)
}
