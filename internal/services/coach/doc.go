// Package coach serves the chat coach: it resumes the stored transcript,
// forwards questions to a coach.Conversation and saves every change.
package coach
