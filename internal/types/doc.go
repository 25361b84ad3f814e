// Package types provides shared data structures for the WardFS server.
//
// This package defines the types exchanged between the dispatch layer and
// service providers:
//   - Service: Service provider definition
//   - Tool: Service tool specification
//   - Parameter: Tool parameter specification
//   - Context: Execution context for operations
//   - Result: Standard operation result
//
// Example Usage:
//
//	result := &types.Result{
//	    Success: true,
//	    Data:    map[string]interface{}{"content": text},
//	}
package types
