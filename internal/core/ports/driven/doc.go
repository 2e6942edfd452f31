// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for a session to function:
//
//   - DocumentLoader: Reads a source document into text plus a page table
//   - EmbeddingService: Generates vector embeddings for chunks and queries
//   - VectorIndex: Stores chunk embeddings and answers top-k queries
//   - Generator: Turns ranked matches into a generation output
//   - ConversationStore: Persists a session's conversation log
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - LLMService: Language model generation. Without it, only the
//     rule-based generation strategy is available.
//   - ConfigStore: Application configuration. Without it, defaults apply.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
