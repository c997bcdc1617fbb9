// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives validated
// payloads, calls the repository and turns "no row" outcomes into not-found
// errors. Storage failures are wrapped and left for the global error
// handler to classify.
package service
