// Package assets provides the CSS styles used to wrap rendered chat
// fragments into standalone HTML documents.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - styles compiled into the binary (chat, minimal)
//	    ├── FilesystemLoader  - styles from a directory on disk
//	    └── AssetResolver     - custom directory first, embedded fallback
//
// A custom directory holds one file per style:
//
//	{basePath}/
//	└── styles/
//	    └── {name}.css
//
// # Security
//
// Style names are validated so they can never name a path. FilesystemLoader
// resolves symlinks and verifies every file stays within basePath.
package assets
