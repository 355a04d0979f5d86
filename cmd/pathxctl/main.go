// Command pathxctl is a small command-line front end for the pathx
// engine: build a demo tree, evaluate an expression against it, or lint
// an expression without evaluating it.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/augeng/pathx"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pathxctl",
		Short:         "Evaluate and lint path expressions against an in-memory demo tree",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newBuildCmd(), newEvalCmd(), newLintCmd())
	return root
}

// buildDemoTree constructs a small fixed tree for build/eval to run
// against:
//
//	root
//	  host
//	    service
//	      name = "web"
//	      port = "8080"
//	    service
//	      name = "db"
//	      port = "5432"
func buildDemoTree() (*pathx.MemNode, pathx.Tree) {
	t := pathx.MemTree{}
	root := pathx.NewMemTree("root")
	host := t.NewChild(root, "host", "")

	svc1 := t.NewChild(host, "service", "")
	t.NewChild(svc1, "name", "web")
	t.NewChild(svc1, "port", "8080")

	svc2 := t.NewChild(host, "service", "")
	t.NewChild(svc2, "name", "db")
	t.NewChild(svc2, "port", "5432")

	return root, t
}

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Print the demo tree used by eval",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, tree := buildDemoTree()
			printTree(cmd, tree, root, 0)
			return nil
		},
	}
}

func printTree(cmd *cobra.Command, tree pathx.Tree, n pathx.TreeNode, depth int) {
	label, _ := tree.Label(n)
	value, hasValue := tree.Value(n)
	line := strings.Repeat("  ", depth) + label
	if hasValue && value != "" {
		line += " = " + value
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)
	for c := tree.Children(n); c != nil; c = tree.Next(c) {
		printTree(cmd, tree, c, depth+1)
	}
}

func newEvalCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate a path expression against the demo tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, tree := buildDemoTree()
			engine := pathx.NewEngine()
			sess, err := engine.Parse(tree, root, args[0])
			if err != nil {
				return reportErr(cmd, err)
			}

			n, err := sess.First()
			if err != nil {
				return reportErr(cmd, err)
			}
			if n == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "(no match)")
				return nil
			}
			printMatch(cmd, tree, n)
			if !all {
				return nil
			}
			for {
				n, err = sess.Next()
				if err != nil {
					return reportErr(cmd, err)
				}
				if n == nil {
					return nil
				}
				printMatch(cmd, tree, n)
			}
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "print every match instead of just the first")
	return cmd
}

func printMatch(cmd *cobra.Command, tree pathx.Tree, n pathx.TreeNode) {
	label, _ := tree.Label(n)
	value, _ := tree.Value(n)
	fmt.Fprintf(cmd.OutOrStdout(), "%s = %q\n", label, value)
}

func newLintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint <expression>",
		Short: "Parse and type-check a path expression without evaluating it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := pathx.NewEngine()
			_, tree := buildDemoTree()
			if _, err := engine.Parse(tree, nil, args[0]); err != nil {
				return reportErr(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}

func reportErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err)
	return err
}
