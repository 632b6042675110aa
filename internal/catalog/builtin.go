package catalog

// Builtin returns the catalog of open-notebook CLI commands the bridge ships
// with. It mirrors the CLI's own argument parser: positional identifiers and
// content first, behavior switches as flags, tunables as options.
func Builtin() Catalog {
	return Catalog{Commands: []Command{
		// Notebooks
		{
			Name: "list-notebooks",
			Help: "List all notebooks",
			Params: []Parameter{
				option("order_by", "Order by field (created, updated)", "updated desc"),
				flag("include_archived", "Include archived notebooks"),
			},
		},
		{
			Name: "get-notebook",
			Help: "Get a specific notebook",
			Params: []Parameter{
				positional("notebook_id", "ID of the notebook"),
			},
		},
		{
			Name: "create-notebook",
			Help: "Create a new notebook",
			Params: []Parameter{
				positional("name", "Name of the notebook"),
				positional("description", "Description of the notebook"),
			},
		},
		{
			Name: "archive-notebook",
			Help: "Archive a notebook",
			Params: []Parameter{
				positional("notebook_id", "ID of the notebook to archive"),
			},
		},
		{
			Name: "unarchive-notebook",
			Help: "Unarchive a notebook",
			Params: []Parameter{
				positional("notebook_id", "ID of the notebook to unarchive"),
			},
		},

		// Sources
		{
			Name: "list-sources",
			Help: "List all sources in a notebook",
			Params: []Parameter{
				positional("notebook_id", "ID of the notebook"),
			},
		},
		{
			Name: "get-source",
			Help: "Get a specific source",
			Params: []Parameter{
				positional("source_id", "ID of the source"),
				flag("full_text", "Show the full text of the source"),
				flag("show_insights", "Show insights for the source"),
			},
		},
		{
			Name: "add-text-source",
			Help: "Add a text source to a notebook",
			Params: []Parameter{
				positional("notebook_id", "ID of the notebook"),
				positional("title", "Title of the source"),
				positional("content", "Content of the source"),
				flag("embed", "Generate embeddings for the source"),
				repeated("apply_transformations", "Apply transformations to the source"),
				flag("transform", "Apply a standard set of transformations and automatically enable embedding"),
			},
		},
		{
			Name: "add-url-source",
			Help: "Add a URL source to a notebook",
			Params: []Parameter{
				positional("notebook_id", "ID of the notebook"),
				positional("url", "URL of the source"),
				flag("embed", "Generate embeddings for the source"),
				repeated("apply_transformations", "Apply transformations to the source"),
				flag("transform", "Apply a standard set of transformations and automatically enable embedding"),
			},
		},
		{
			Name: "embed-source",
			Help: "Generate embeddings for a source",
			Params: []Parameter{
				positional("source_id", "ID of the source"),
			},
		},

		// Notes
		{
			Name: "list-notes",
			Help: "List all notes in a notebook",
			Params: []Parameter{
				positional("notebook_id", "ID of the notebook"),
			},
		},
		{
			Name: "get-note",
			Help: "Get a specific note",
			Params: []Parameter{
				positional("note_id", "ID of the note"),
			},
		},
		{
			Name: "create-note",
			Help: "Create a new note and add it to a notebook",
			Params: []Parameter{
				positional("notebook_id", "ID of the notebook"),
				positional("title", "Title of the note"),
				positional("content", "Content of the note"),
				enum("type", "Type of note", []string{"human", "ai"}, "human"),
			},
		},
		{
			Name: "insight-to-note",
			Help: "Convert a source insight to a note",
			Params: []Parameter{
				positional("insight_id", "ID of the source insight"),
				positional("notebook_id", "ID of the notebook"),
			},
		},

		// Transformations
		{
			Name: "list-transformations",
			Help: "List all transformations",
			Params: []Parameter{
				option("order_by", "Order by field", "name asc"),
			},
		},
		{
			Name: "get-transformation",
			Help: "Get a specific transformation",
			Params: []Parameter{
				positional("transformation_id", "ID of the transformation"),
			},
		},
		{
			Name: "create-transformation",
			Help: "Create a new transformation",
			Params: []Parameter{
				positional("name", "Name of the transformation"),
				positional("title", "Title for insights generated by this transformation"),
				positional("description", "Description of the transformation"),
				positional("prompt", "Prompt for the transformation"),
				flag("apply_default", "Apply by default to new sources"),
			},
		},
		{
			Name: "apply-transformation",
			Help: "Apply a transformation to a source",
			Params: []Parameter{
				positional("source_id", "ID of the source"),
				// Trailing optional positional: omitted when --transform is set.
				{Name: "transformation_id", Kind: KindPositional, Help: "ID of the transformation"},
				flag("transform", "Apply all standard transformations and automatically enable embedding"),
			},
		},

		// Chat sessions
		{
			Name: "list-chat-sessions",
			Help: "List all chat sessions for a notebook",
			Params: []Parameter{
				positional("notebook_id", "ID of the notebook"),
			},
		},
		{
			Name: "create-chat-session",
			Help: "Create a new chat session for a notebook",
			Params: []Parameter{
				positional("notebook_id", "ID of the notebook"),
				positional("title", "Title of the chat session"),
			},
		},

		// Search
		{
			Name: "text-search",
			Help: "Perform a text search across sources and notes",
			Params: []Parameter{
				positional("query", "Search query"),
				intOption("results", "Number of results to return", 10),
				flagDefault("source", "Include sources in search results", true),
				flagDefault("note", "Include notes in search results", true),
			},
		},
		{
			Name: "vector-search",
			Help: "Perform a vector (semantic) search",
			Params: []Parameter{
				positional("query", "Search query"),
				intOption("results", "Number of results to return", 5),
				flagDefault("source", "Include sources in search results", true),
				flagDefault("note", "Include notes in search results", true),
				numberOption("min_score", "Minimum similarity score (0-1)", 0.2),
			},
		},

		// Podcasts
		{
			Name: "list-podcast-templates",
			Help: "List all podcast templates",
		},
		{
			Name: "get-podcast-template",
			Help: "Get a specific podcast template",
			Params: []Parameter{
				positional("template_id", "ID of the podcast template"),
			},
		},
		{
			Name: "list-podcast-episodes",
			Help: "List all podcast episodes",
			Params: []Parameter{
				option("order_by", "Order by field", "created desc"),
			},
		},
		{
			Name: "generate-podcast",
			Help: "Generate a podcast from a notebook",
			Params: []Parameter{
				positional("template_id", "ID of the podcast template"),
				positional("notebook_id", "ID of the notebook to generate podcast from"),
				positional("episode_name", "Name of the podcast episode"),
				option("instructions", "Additional instructions for podcast generation", nil),
				flag("longform", "Generate a longer podcast"),
			},
		},
	}}
}

func positional(name, help string) Parameter {
	return Parameter{Name: name, Kind: KindPositional, Required: true, Help: help}
}

func flag(name, help string) Parameter {
	return Parameter{Name: name, Kind: KindFlag, Type: TypeBoolean, Help: help}
}

func flagDefault(name, help string, def bool) Parameter {
	return Parameter{Name: name, Kind: KindFlag, Type: TypeBoolean, Default: def, Help: help}
}

func option(name, help string, def any) Parameter {
	return Parameter{Name: name, Kind: KindOption, Type: TypeString, Default: def, Help: help}
}

func intOption(name, help string, def int) Parameter {
	return Parameter{Name: name, Kind: KindOption, Type: TypeInteger, Default: def, Help: help}
}

func numberOption(name, help string, def float64) Parameter {
	return Parameter{Name: name, Kind: KindOption, Type: TypeNumber, Default: def, Help: help}
}

func repeated(name, help string) Parameter {
	return Parameter{Name: name, Kind: KindOption, Type: TypeString, Repeated: true, Help: help}
}

func enum(name, help string, choices []string, def any) Parameter {
	return Parameter{Name: name, Kind: KindOption, Type: TypeString, Choices: choices, Default: def, Help: help}
}
