// Package application provides application initialization and dependency wiring.
// It loads the reference dataset and encapsulates the creation of storage,
// calculator, comparison engine, handlers, routers, and HTTP server instances,
// making the main package cleaner and more focused on CLI parsing and orchestration.
package application
