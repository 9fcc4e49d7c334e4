// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package moves

import (
	"fmt"
	"log"

	"github.com/npetzall/moved-maker-sub004/internal/addrs"
	"github.com/npetzall/moved-maker-sub004/internal/configs"
	"github.com/npetzall/moved-maker-sub004/internal/tfdiags"
)

// Stream lazily produces the move statements for every resource and
// module declaration under a configuration directory.
//
// Construction performs no I/O. Files are enumerated on the first call to
// Next and then read, parsed and discarded one at a time, so memory use
// is bounded by the largest single file rather than the whole directory.
// Statements are yielded in a deterministic order: files in lexicographic
// order, declarations in source order within each file.
//
// A Stream is single-use. Once Next has returned false it returns false
// forever; iterating again requires a fresh Stream. Every file and block
// is attempted exactly once, with no retries: an unreadable or
// unparseable file is recorded as a warning and skipped, as is any
// individual declaration that cannot produce a statement.
type Stream struct {
	dir          string
	targetModule string

	started   bool
	exhausted bool
	err       error

	files   []string
	nextIdx int
	pending []*configs.Declaration

	diags         tfdiags.Diagnostics
	skippedFiles  int
	skippedBlocks int
}

// NewStream returns a stream over the configuration directory dir, moving
// declarations into the module named targetModule. No I/O happens until
// the first call to Next.
func NewStream(dir, targetModule string) *Stream {
	return &Stream{
		dir:          dir,
		targetModule: targetModule,
	}
}

// Next returns the next move statement, or false if the stream is
// exhausted. Once false has been returned the stream stays exhausted.
func (s *Stream) Next() (Statement, bool) {
	if s.exhausted {
		return nil, false
	}
	if !s.started {
		s.started = true
		files, err := configs.ConfigDirFiles(s.dir)
		if err != nil {
			// An inaccessible root is fatal; it is surfaced via Err
			// rather than as a skipped-file warning.
			s.err = err
			s.exhausted = true
			return nil, false
		}
		s.files = files
	}

	for {
		for len(s.pending) > 0 {
			decl := s.pending[0]
			s.pending = s.pending[1:]

			stmt, err := s.statementForDeclaration(decl)
			if err != nil {
				s.skippedBlocks++
				s.diags = s.diags.Append(tfdiags.Sourceless(
					tfdiags.Warning,
					fmt.Sprintf("Skipped invalid %s block", decl.Kind.Keyword()),
					fmt.Sprintf("The %s block at %s does not have a usable address: %s.", decl.Kind.Keyword(), decl.DeclRange.String(), err),
				))
				log.Printf("[WARN] moves: skipping %s block at %s: %s", decl.Kind.Keyword(), decl.DeclRange, err)
				continue
			}
			return stmt, true
		}

		if s.nextIdx >= len(s.files) {
			s.exhausted = true
			return nil, false
		}

		path := s.files[s.nextIdx]
		s.nextIdx++
		s.loadFile(path)
	}
}

// loadFile parses one file and queues its declarations. The parsed body
// is not retained; only the extracted declarations survive, which own
// their labels and paths.
func (s *Stream) loadFile(path string) {
	log.Printf("[TRACE] moves: reading %s", path)

	// A fresh parser per file keeps the memory bound at one file's worth
	// of parsed state; hclparse retains everything it has parsed.
	file, parseDiags := configs.NewParser().LoadSourceFile(path)
	if file == nil || parseDiags.HasErrors() {
		s.skippedFiles++
		s.diags = s.diags.Append(tfdiags.Sourceless(
			tfdiags.Warning,
			"Skipped unreadable configuration file",
			fmt.Sprintf("The file %q could not be processed: %s.", path, parseDiags.Error()),
		))
		log.Printf("[WARN] moves: skipping %s: %s", path, parseDiags.Error())
		return
	}

	decls, declDiags := file.Declarations()
	s.diags = s.diags.Append(declDiags)
	s.skippedBlocks += len(declDiags)
	s.pending = decls
}

func (s *Stream) statementForDeclaration(decl *configs.Declaration) (Statement, error) {
	switch decl.Kind {
	case configs.DeclResource:
		stmt := MovedResource{
			Resource:     addrs.Resource{Type: decl.Labels[0], Name: decl.Labels[1]},
			SourceFile:   decl.SourceFile,
			TargetModule: s.targetModule,
		}
		// Surface malformed addresses (e.g. an empty label) now, so the
		// caller can skip just this statement.
		if _, err := stmt.FromTraversal(); err != nil {
			return nil, err
		}
		if _, err := stmt.ToTraversal(); err != nil {
			return nil, err
		}
		return stmt, nil
	case configs.DeclModule:
		stmt := MovedModule{
			Call:         addrs.ModuleCall{Name: decl.Labels[0]},
			SourceFile:   decl.SourceFile,
			TargetModule: s.targetModule,
		}
		if _, err := stmt.FromTraversal(); err != nil {
			return nil, err
		}
		if _, err := stmt.ToTraversal(); err != nil {
			return nil, err
		}
		return stmt, nil
	default:
		return nil, fmt.Errorf("unsupported declaration kind %q", string(decl.Kind))
	}
}

// Err returns the fatal error that stopped the stream, if any. A nil
// result after exhaustion means every file was at least attempted.
func (s *Stream) Err() error {
	return s.err
}

// Diagnostics returns the warnings accumulated so far. The list is only
// complete once the stream is exhausted.
func (s *Stream) Diagnostics() tfdiags.Diagnostics {
	return s.diags
}

// SkippedFiles returns the number of files that could not be processed.
func (s *Stream) SkippedFiles() int {
	return s.skippedFiles
}

// SkippedBlocks returns the number of declarations that were found but
// could not produce a statement.
func (s *Stream) SkippedBlocks() int {
	return s.skippedBlocks
}
