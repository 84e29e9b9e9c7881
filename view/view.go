// Package view browses parsed forms as a collapsible tree in the terminal.
package view

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lollipopkit/kale/compiler"
	"github.com/lollipopkit/kale/compiler/ast"
	"github.com/rivo/tview"
)

// Build turns a unit into a tree: one branch per form, then one red leaf per
// syntax error. Every node references the ast.Node (or error) it shows.
func Build(unit *compiler.Unit) *tview.TreeNode {
	root := tview.NewTreeNode(unit.Chunk).
		SetColor(tcell.ColorYellow).
		SetSelectable(false)
	for _, form := range unit.Forms {
		root.AddChild(buildNode(form))
	}
	for _, err := range unit.Errs {
		root.AddChild(tview.NewTreeNode(err.Error()).
			SetReference(err).
			SetColor(tcell.ColorRed))
	}
	return root
}

func buildNode(n ast.Node) *tview.TreeNode {
	node := tview.NewTreeNode(ast.Label(n)).
		SetReference(n).
		SetSelectable(true)

	children := ast.Children(n)
	if len(children) == 0 {
		return node.SetColor(tcell.ColorGreen)
	}
	for _, child := range children {
		node.AddChild(buildNode(child))
	}
	return node
}

// Show runs the browser until Esc or q is pressed. Enter folds a branch.
func Show(unit *compiler.Unit) error {
	root := Build(unit)
	tree := tview.NewTreeView().
		SetRoot(root).
		SetCurrentNode(root)
	tree.SetBorder(true).SetTitle(" " + unit.Chunk + " ")

	tree.SetSelectedFunc(func(node *tview.TreeNode) {
		if len(node.GetChildren()) > 0 {
			node.SetExpanded(!node.IsExpanded())
		}
	})

	app := tview.NewApplication()
	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Rune() == 'q' {
			app.Stop()
			return nil
		}
		return event
	})
	return app.SetRoot(tree, true).Run()
}
