package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `quadro manages one kanban board per owner: Board → Lists → Cards.

Core concepts (keep this mental model small):
- Owner: the entity a board belongs to (e.g., a construction site). Every owner has exactly one board.
- Board: resolved lazily. get_board with an owner_id creates the board on first use.
- List: an ordered column of cards. Lists keep their creation order.
- Card: title + optional description, due date, labels, checklists, comments, attachments.
- Label: a shared catalog of title+color pairs. Cards reference labels; they never own them.

Rules of engagement (default workflow):
1) Orient: call get_board with the owner_id. The tree gives you every list and card in order.
2) Inspect a card before editing it: get_card returns labels, checklists, comments and attachments.
3) Mutate: create_list / create_card / update_card / move_card / reorder_cards.
   - reorder_cards requires every card of the list exactly once; partial lists are rejected.
   - move_card always appends to the end of the target list.
4) Labels: list_labels for the catalog, set_label / unset_label to attach or detach. Both are idempotent.
5) Deletion cascades: delete_list removes its cards, delete_card removes checklists, comments and attachments. There is no undo.
6) Search: search_cards does full-text matching over titles and descriptions within one board.

Docs (progressive disclosure):
- quadro://docs/index (what to read when)
- quadro://docs/concepts (glossary + invariants)
- quadro://docs/workflows/board-editing
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "quadro://docs/index",
		Name:        "docs_index",
		Title:       "quadro docs index",
		Description: "Entry point for agent-facing docs: what exists and what to read.",
		Content: `# quadro: Agent Docs Index

This server is designed for **progressive disclosure**: keep your baseline context small and load deeper docs only when needed.

## Quick start (no deep docs)

1. ` + "`get_board`" + ` with an ` + "`owner_id`" + ` to orient. The board is created on first use.
2. ` + "`search_cards`" + ` to find a card without walking the tree.
3. ` + "`get_card`" + ` before editing card detail (checklists, comments, attachments).
4. Mutate via ` + "`create_card`" + ` / ` + "`update_card`" + ` / ` + "`move_card`" + ` / ` + "`reorder_cards`" + `.
5. Labels come from a shared catalog: ` + "`list_labels`" + `, then ` + "`set_label`" + ` / ` + "`unset_label`" + `.

## Docs (read on demand)

- ` + "`quadro://docs/concepts`" + ` — glossary + invariants (ordering, cascades, label catalog).
- ` + "`quadro://docs/workflows/board-editing`" + ` — the normal read-then-mutate loop.

## Capabilities & intentional limitations

- Deletions cascade and are permanent; there is no archive or undo.
- ` + "`search_cards`" + ` can return large result sets if you omit ` + "`limit`" + `; use limits to control token usage.
`,
	},
	{
		URI:         "quadro://docs/concepts",
		Name:        "docs_concepts",
		Title:       "Concepts and invariants",
		Description: "Mental model + invariant rules: one board per owner, ordering, label catalog, cascades.",
		Content: `# Concepts and invariants

## Glossary

- **Owner**: the entity a board belongs to. One board per owner, created lazily by ` + "`get_board`" + `.
- **Board**: the root container. Holds **Lists** in creation order.
- **List**: an ordered column. Holds **Cards** ordered by position.
- **Card**: ` + "`title`" + `, optional ` + "`description`" + ` and ` + "`due_date`" + `, plus labels, checklists, comments and attachments.
- **Label**: a catalog entry (` + "`title`" + ` + ` + "`color`" + `). Titles are unique. Cards attach labels by reference.
- **Checklist**: titled group of checkable items on a card, kept in creation order.

## Ordering

- New lists and cards always append to the end.
- ` + "`move_card`" + ` appends to the end of the target list.
- ` + "`reorder_cards`" + ` is the only way to set an arbitrary order, and it requires the complete list: every card exactly once.

## Label catalog

- ` + "`set_label`" + ` on an already attached label and ` + "`unset_label`" + ` on an absent one are both no-ops.
- Deleting a card detaches its labels but never deletes catalog entries.

## Cascades

Deletions are deep and permanent:

- ` + "`delete_card`" + ` removes its checklists, items, label attachments, comments and attachments (including stored files).
- ` + "`delete_list`" + ` does the same for every card it contains.
- ` + "`delete_checklist`" + ` removes its items.
`,
	},
	{
		URI:         "quadro://docs/workflows/board-editing",
		Name:        "docs_workflow_board_editing",
		Title:       "Workflow: board editing",
		Description: "Playbook for the normal loop: orient, inspect, mutate.",
		Content: `# Workflow: board editing

## 1) Orient (one call)

Call ` + "`get_board({owner_id})`" + `. Use the tree to answer:
- Which lists exist, and in what order?
- Which cards are in each list?

Card entries in the tree are summaries. Do not guess at checklists or comments from the tree.

## 2) Inspect before editing detail

Call ` + "`get_card({card_id})`" + ` when you need checklists, items, comments or attachments. It also tells you which labels are already attached, so ` + "`set_label`" + ` calls stay intentional.

## 3) Mutate

- Structure: ` + "`create_list`" + ` / ` + "`rename_list`" + ` / ` + "`delete_list`" + `.
- Cards: ` + "`create_card`" + ` (labels can be attached at creation by title), ` + "`update_card`" + ` (omitted fields keep their value, ` + "`clear_due_date`" + ` removes the due date), ` + "`move_card`" + `, ` + "`reorder_cards`" + `.
- Checklists: ` + "`add_checklist`" + ` → ` + "`add_checklist_item`" + ` → ` + "`toggle_checklist_item`" + `.
- Comments default their author to the authenticated user; pass ` + "`author_id`" + ` to override.
- Attachments: ` + "`add_attachment`" + ` takes the file body base64-encoded and returns the stored URL.

## 4) Confirm destructive actions

` + "`delete_list`" + `, ` + "`delete_card`" + ` and ` + "`delete_checklist`" + ` cascade with no undo. Confirm with the user before deleting anything that holds content.
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
