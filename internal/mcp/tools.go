package mcp

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/jsonschema-go/jsonschema"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// ToolDefinition describes a callable tool.
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// registerTools registers every catalog tool on the SDK server, routing
// calls through the handler.
func registerTools(server *sdkmcp.Server, handler *Handler) {
	for _, def := range buildToolCatalog() {
		def := def
		server.AddTool(&sdkmcp.Tool{
			Name:        def.Name,
			Description: def.Description,
			InputSchema: inputSchema(def.InputSchema),
		}, func(ctx context.Context, req *sdkmcp.CallToolRequest) (*sdkmcp.CallToolResult, error) {
			result, err := handler.Handle(ctx, getUserID(ctx), def.Name, req.Params.Arguments)
			if err != nil {
				return errorResult(err), nil
			}
			payload, err := json.Marshal(result)
			if err != nil {
				return nil, err
			}
			return &sdkmcp.CallToolResult{
				Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: string(payload)}},
			}, nil
		})
	}
}

// inputSchema converts a literal schema map into the SDK schema type.
// The catalog maps are static, so conversion cannot fail at runtime.
func inputSchema(m map[string]any) *jsonschema.Schema {
	data, _ := json.Marshal(m)
	var s jsonschema.Schema
	_ = json.Unmarshal(data, &s)
	return &s
}

func errorResult(err error) *sdkmcp.CallToolResult {
	text := err.Error()
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if data, marshalErr := json.Marshal(apiErr); marshalErr == nil {
			text = string(data)
		}
	}
	return &sdkmcp.CallToolResult{
		IsError: true,
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: text}},
	}
}

// buildToolCatalog returns all available MCP tools
func buildToolCatalog() []ToolDefinition {
	return []ToolDefinition{
		// Board
		{
			Name:        "get_board",
			Description: "Get the full board tree (lists with their cards in order) for an owner, creating the board on first use",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"owner_id": map[string]any{
						"type":        "string",
						"description": "Owner ID whose board to fetch",
					},
					"board_id": map[string]any{
						"type":        "string",
						"description": "Board ID (omit to resolve via owner_id)",
					},
				},
			},
		},
		{
			Name:        "search_cards",
			Description: "Full-text search over card titles and descriptions within a board",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"board_id": map[string]any{
						"type":        "string",
						"description": "Board ID to search in",
					},
					"query": map[string]any{
						"type":        "string",
						"description": "Search query text",
					},
					"limit": map[string]any{
						"type":        "integer",
						"description": "Maximum number of results",
					},
					"offset": map[string]any{
						"type":        "integer",
						"description": "Offset for pagination",
					},
				},
				"required": []string{"board_id", "query"},
			},
		},

		// Lists
		{
			Name:        "create_list",
			Description: "Create a new list at the end of a board",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"board_id": map[string]any{
						"type":        "string",
						"description": "Board ID",
					},
					"title": map[string]any{
						"type":        "string",
						"description": "List title",
					},
				},
				"required": []string{"board_id", "title"},
			},
		},
		{
			Name:        "rename_list",
			Description: "Rename a list",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"list_id": map[string]any{
						"type":        "string",
						"description": "List ID",
					},
					"title": map[string]any{
						"type":        "string",
						"description": "New title",
					},
				},
				"required": []string{"list_id", "title"},
			},
		},
		{
			Name:        "delete_list",
			Description: "Delete a list and every card it contains, including their checklists, comments and attachments",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"list_id": map[string]any{
						"type":        "string",
						"description": "List ID",
					},
				},
				"required": []string{"list_id"},
			},
		},

		// Cards
		{
			Name:        "create_card",
			Description: "Create a new card at the end of a list",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"list_id": map[string]any{
						"type":        "string",
						"description": "List ID",
					},
					"title": map[string]any{
						"type":        "string",
						"description": "Card title",
					},
					"description": map[string]any{
						"type":        "string",
						"description": "Card description",
					},
					"due_date": map[string]any{
						"type":        "string",
						"description": "Due date (RFC 3339)",
					},
					"labels": map[string]any{
						"type":        "array",
						"description": "Label titles to attach (unknown titles are skipped)",
						"items":       map[string]any{"type": "string"},
					},
				},
				"required": []string{"list_id", "title"},
			},
		},
		{
			Name:        "get_card",
			Description: "Get the full card detail: labels, checklists with items, comments and attachments",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"card_id": map[string]any{
						"type":        "string",
						"description": "Card ID",
					},
				},
				"required": []string{"card_id"},
			},
		},
		{
			Name:        "update_card",
			Description: "Update a card's title, description or due date. Omitted fields are left unchanged",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"card_id": map[string]any{
						"type":        "string",
						"description": "Card ID",
					},
					"title": map[string]any{
						"type":        "string",
						"description": "New title",
					},
					"description": map[string]any{
						"type":        "string",
						"description": "New description",
					},
					"due_date": map[string]any{
						"type":        "string",
						"description": "New due date (RFC 3339)",
					},
					"clear_due_date": map[string]any{
						"type":        "boolean",
						"description": "Remove the due date",
					},
				},
				"required": []string{"card_id"},
			},
		},
		{
			Name:        "move_card",
			Description: "Move a card to the end of another list",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"card_id": map[string]any{
						"type":        "string",
						"description": "Card ID",
					},
					"target_list_id": map[string]any{
						"type":        "string",
						"description": "Destination list ID",
					},
				},
				"required": []string{"card_id", "target_list_id"},
			},
		},
		{
			Name:        "reorder_cards",
			Description: "Reorder the cards of a list. card_ids must contain every card of the list exactly once, in the desired order",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"list_id": map[string]any{
						"type":        "string",
						"description": "List ID",
					},
					"card_ids": map[string]any{
						"type":        "array",
						"description": "Card IDs in the desired order",
						"items":       map[string]any{"type": "string"},
					},
				},
				"required": []string{"list_id", "card_ids"},
			},
		},
		{
			Name:        "delete_card",
			Description: "Delete a card and all of its checklists, comments and attachments",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"card_id": map[string]any{
						"type":        "string",
						"description": "Card ID",
					},
				},
				"required": []string{"card_id"},
			},
		},

		// Checklists
		{
			Name:        "add_checklist",
			Description: "Add an empty checklist to a card",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"card_id": map[string]any{
						"type":        "string",
						"description": "Card ID",
					},
					"title": map[string]any{
						"type":        "string",
						"description": "Checklist title",
					},
				},
				"required": []string{"card_id", "title"},
			},
		},
		{
			Name:        "delete_checklist",
			Description: "Delete a checklist and all of its items",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"checklist_id": map[string]any{
						"type":        "string",
						"description": "Checklist ID",
					},
				},
				"required": []string{"checklist_id"},
			},
		},
		{
			Name:        "add_checklist_item",
			Description: "Add an unchecked item to a checklist",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"checklist_id": map[string]any{
						"type":        "string",
						"description": "Checklist ID",
					},
					"title": map[string]any{
						"type":        "string",
						"description": "Item title",
					},
				},
				"required": []string{"checklist_id", "title"},
			},
		},
		{
			Name:        "toggle_checklist_item",
			Description: "Set the checked state of a checklist item",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"checklist_id": map[string]any{
						"type":        "string",
						"description": "Checklist ID the item belongs to",
					},
					"item_id": map[string]any{
						"type":        "string",
						"description": "Item ID",
					},
					"checked": map[string]any{
						"type":        "boolean",
						"description": "Desired checked state",
					},
				},
				"required": []string{"checklist_id", "item_id", "checked"},
			},
		},
		{
			Name:        "delete_checklist_item",
			Description: "Delete a checklist item",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"item_id": map[string]any{
						"type":        "string",
						"description": "Item ID",
					},
				},
				"required": []string{"item_id"},
			},
		},

		// Labels
		{
			Name:        "list_labels",
			Description: "List the label catalog",
			InputSchema: map[string]any{
				"type":       "object",
				"properties": map[string]any{},
			},
		},
		{
			Name:        "create_label",
			Description: "Create a new label in the catalog",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title": map[string]any{
						"type":        "string",
						"description": "Label title (unique)",
					},
					"color": map[string]any{
						"type":        "string",
						"description": "Hex color, e.g. #61bd4f",
					},
				},
				"required": []string{"title", "color"},
			},
		},
		{
			Name:        "set_label",
			Description: "Attach a label to a card. Attaching an already attached label is a no-op",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"card_id": map[string]any{
						"type":        "string",
						"description": "Card ID",
					},
					"label_id": map[string]any{
						"type":        "string",
						"description": "Label ID",
					},
				},
				"required": []string{"card_id", "label_id"},
			},
		},
		{
			Name:        "unset_label",
			Description: "Detach a label from a card. Detaching an absent label is a no-op",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"card_id": map[string]any{
						"type":        "string",
						"description": "Card ID",
					},
					"label_id": map[string]any{
						"type":        "string",
						"description": "Label ID",
					},
				},
				"required": []string{"card_id", "label_id"},
			},
		},

		// Comments
		{
			Name:        "add_comment",
			Description: "Add a comment to a card",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"card_id": map[string]any{
						"type":        "string",
						"description": "Card ID",
					},
					"content": map[string]any{
						"type":        "string",
						"description": "Comment text",
					},
					"author_id": map[string]any{
						"type":        "string",
						"description": "Author ID (defaults to the authenticated user)",
					},
				},
				"required": []string{"card_id", "content"},
			},
		},
		{
			Name:        "delete_comment",
			Description: "Delete a comment",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"comment_id": map[string]any{
						"type":        "string",
						"description": "Comment ID",
					},
				},
				"required": []string{"comment_id"},
			},
		},

		// Attachments
		{
			Name:        "add_attachment",
			Description: "Upload a file and attach it to a card",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"card_id": map[string]any{
						"type":        "string",
						"description": "Card ID",
					},
					"file_name": map[string]any{
						"type":        "string",
						"description": "Original file name",
					},
					"file_type": map[string]any{
						"type":        "string",
						"description": "MIME type",
					},
					"content": map[string]any{
						"type":        "string",
						"description": "Base64-encoded file body",
					},
				},
				"required": []string{"card_id", "file_name", "content"},
			},
		},
		{
			Name:        "delete_attachment",
			Description: "Delete an attachment and its stored file",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"attachment_id": map[string]any{
						"type":        "string",
						"description": "Attachment ID",
					},
				},
				"required": []string{"attachment_id"},
			},
		},
	}
}
