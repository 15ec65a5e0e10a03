// learn3d-catalog prints and exports the procedural model registries.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/learn3d/internal/catalog"
	"github.com/Faultbox/learn3d/internal/engine/mesh"
	"github.com/Faultbox/learn3d/internal/scene"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "subjects":
		err = writeSubjects(os.Stdout)
	case "list", "ls":
		err = cmdList(args)
	case "show":
		err = cmdShow(args)
	case "tree":
		err = cmdTree(args)
	case "export":
		err = cmdExport(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`learn3d-catalog - Learn3D model registry utility

Usage:
  learn3d-catalog <command> [options]

Commands:
  subjects                          List subjects with their model counts
  list <subject>                    List the models of a subject
  show <subject> <index|name>       Show a model's description and primitive counts
  tree [-depth N] <subject> <index|name>
                                    Print a model's node tree
  export <subject> [file.yaml]      Export a subject's descriptors as YAML

Examples:
  learn3d-catalog list history
  learn3d-catalog show biology heart
  learn3d-catalog tree -depth 2 history 3
  learn3d-catalog export geometry geometry.yaml`)
}

func registry(key string) (*catalog.Registry, error) {
	reg, ok := catalog.BySubject(strings.ToLower(key))
	if !ok {
		return nil, fmt.Errorf("unknown subject %q (want one of %s)", key, strings.Join(catalog.SubjectKeys(), ", "))
	}
	return reg, nil
}

// resolveIndex accepts a zero-based index or a case-insensitive model name.
func resolveIndex(reg *catalog.Registry, arg string) (int, error) {
	if i, err := strconv.Atoi(arg); err == nil {
		if i < 0 || i >= reg.Len() {
			return 0, fmt.Errorf("index %d out of range [0, %d)", i, reg.Len())
		}
		return i, nil
	}
	names := reg.Names()
	for i, name := range names {
		if strings.EqualFold(name, arg) {
			return i, nil
		}
	}

	// Fall back to a unique partial match, so "heart" finds "Human Heart".
	needle := strings.ToLower(arg)
	var matches []string
	found := -1
	for i, name := range names {
		if strings.Contains(strings.ToLower(name), needle) {
			matches = append(matches, name)
			found = i
		}
	}
	switch len(matches) {
	case 0:
		return 0, fmt.Errorf("no model %q in %s", arg, reg.Subject)
	case 1:
		return found, nil
	default:
		return 0, fmt.Errorf("%q is ambiguous in %s: %s", arg, reg.Subject, strings.Join(matches, ", "))
	}
}

func modelArgs(args []string, usage string) (*catalog.Registry, int, error) {
	if len(args) < 2 {
		return nil, 0, fmt.Errorf("usage: learn3d-catalog %s", usage)
	}
	reg, err := registry(args[0])
	if err != nil {
		return nil, 0, err
	}
	i, err := resolveIndex(reg, args[1])
	if err != nil {
		return nil, 0, err
	}
	return reg, i, nil
}

func writeSubjects(w io.Writer) error {
	for _, subj := range catalog.Subjects() {
		reg, _ := catalog.BySubject(subj.Key)
		status := "available"
		if !subj.Available {
			status = "coming soon"
		}
		if _, err := fmt.Fprintf(w, "%-10s %-24s %2d models  (%s)\n", subj.Key, subj.Title, reg.Len(), status); err != nil {
			return err
		}
	}
	return nil
}

func cmdList(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: learn3d-catalog list <subject>")
	}
	reg, err := registry(args[0])
	if err != nil {
		return err
	}
	return writeList(os.Stdout, reg)
}

func writeList(w io.Writer, reg *catalog.Registry) error {
	fmt.Fprintf(w, "%s (%d models)\n", reg.Title, reg.Len())
	for i, d := range reg.Descriptors {
		line := fmt.Sprintf("  %2d  %s", i, d.Name)
		if d.Period != "" {
			line += "  [" + d.Period + "]"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func cmdShow(args []string) error {
	reg, i, err := modelArgs(args, "show <subject> <index|name>")
	if err != nil {
		return err
	}
	return writeShow(os.Stdout, reg, i, mesh.NewCache())
}

func writeShow(w io.Writer, reg *catalog.Registry, i int, meshes *mesh.Cache) error {
	d := reg.At(i)
	root := d.Build()
	st := root.Stats()

	fmt.Fprintf(w, "Model:     %s\n", d.Name)
	if d.Period != "" {
		fmt.Fprintf(w, "Period:    %s\n", d.Period)
	}
	fmt.Fprintf(w, "Subject:   %s (%d of %d)\n", reg.Subject, i+1, reg.Len())
	fmt.Fprintf(w, "Nodes:     %d (depth %d)\n", st.Nodes, st.MaxDepth)
	fmt.Fprintf(w, "Meshes:    %d\n", st.Meshes)
	fmt.Fprintf(w, "Animated:  %d\n", st.Animated)
	fmt.Fprintf(w, "Outlined:  %d\n", st.Outlined)
	fmt.Fprintf(w, "Triangles: %d\n", triangles(root, meshes))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Primitives:")
	for _, k := range scene.Kinds() {
		if n := st.ByKind[k]; n > 0 {
			fmt.Fprintf(w, "  %-14s %d\n", k, n)
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, d.Description)
	for _, f := range d.Facts {
		fmt.Fprintf(w, "  - %s\n", f)
	}
	return nil
}

// triangles counts the triangles the renderer would draw for root.
func triangles(root *scene.Node, meshes *mesh.Cache) int {
	total := 0
	root.Visit(func(n *scene.Node) {
		if n.Shape != nil {
			total += meshes.Mesh(*n.Shape).Triangles()
		}
	})
	return total
}

func cmdTree(args []string) error {
	fs := flag.NewFlagSet("tree", flag.ExitOnError)
	depth := fs.Int("depth", 0, "Limit output to N levels (0 = all)")
	fs.Parse(args)

	reg, i, err := modelArgs(fs.Args(), "tree [-depth N] <subject> <index|name>")
	if err != nil {
		return err
	}
	return writeTree(os.Stdout, reg.At(i).Build(), *depth)
}

func writeTree(w io.Writer, root *scene.Node, maxDepth int) error {
	var walk func(n *scene.Node, depth int) error
	walk = func(n *scene.Node, depth int) error {
		if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), describe(n)); err != nil {
			return err
		}
		if maxDepth > 0 && depth+1 >= maxDepth {
			if len(n.Children) > 0 {
				fmt.Fprintf(w, "%s... %d children\n", strings.Repeat("  ", depth+1), len(n.Children))
			}
			return nil
		}
		for _, c := range n.Children {
			if err := walk(c, depth+1); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(root, 0)
}

func describe(n *scene.Node) string {
	var parts []string
	name := n.Name
	if name == "" {
		name = "(unnamed)"
	}
	parts = append(parts, name)

	if n.Shape != nil {
		parts = append(parts, n.Shape.String(), n.Material.Color.String())
		if n.Material.IsTranslucent() {
			parts = append(parts, fmt.Sprintf("opacity=%g", n.Material.Opacity))
		}
	}
	if p := n.Transform.Position; p.X != 0 || p.Y != 0 || p.Z != 0 {
		parts = append(parts, fmt.Sprintf("at=(%.2f, %.2f, %.2f)", p.X, p.Y, p.Z))
	}
	if n.Animator != nil {
		parts = append(parts, "animated")
	}
	if n.Edges != nil {
		parts = append(parts, "edges")
	}
	return strings.Join(parts, " ")
}

// exportedModel is the YAML shape of one descriptor.
type exportedModel struct {
	Name        string         `yaml:"name"`
	Period      string         `yaml:"period,omitempty"`
	Description string         `yaml:"description"`
	Facts       []string       `yaml:"facts,omitempty"`
	Nodes       int            `yaml:"nodes"`
	Primitives  map[string]int `yaml:"primitives"`
}

type exportedRegistry struct {
	Subject string          `yaml:"subject"`
	Title   string          `yaml:"title"`
	Tagline string          `yaml:"tagline"`
	Tips    []string        `yaml:"tips,omitempty"`
	Models  []exportedModel `yaml:"models"`
}

func export(reg *catalog.Registry) exportedRegistry {
	out := exportedRegistry{
		Subject: reg.Subject,
		Title:   reg.Title,
		Tagline: reg.Tagline,
		Tips:    slices.Clone(reg.Tips),
	}
	for _, d := range reg.Descriptors {
		st := d.Build().Stats()
		prims := make(map[string]int, len(st.ByKind))
		for k, n := range st.ByKind {
			prims[k.String()] = n
		}
		out.Models = append(out.Models, exportedModel{
			Name:        d.Name,
			Period:      d.Period,
			Description: d.Description,
			Facts:       slices.Clone(d.Facts),
			Nodes:       st.Nodes,
			Primitives:  prims,
		})
	}
	return out
}

func writeExport(w io.Writer, reg *catalog.Registry) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(export(reg)); err != nil {
		return fmt.Errorf("encoding %s: %w", reg.Subject, err)
	}
	return enc.Close()
}

func cmdExport(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: learn3d-catalog export <subject> [file.yaml]")
	}
	reg, err := registry(args[0])
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return writeExport(os.Stdout, reg)
	}

	f, err := os.Create(args[1])
	if err != nil {
		return fmt.Errorf("creating %s: %w", args[1], err)
	}
	defer f.Close()
	if err := writeExport(f, reg); err != nil {
		return err
	}
	fmt.Printf("Exported %d models to %s\n", reg.Len(), args[1])
	return nil
}
