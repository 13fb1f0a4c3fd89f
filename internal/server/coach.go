package server

import (
	"github.com/gofiber/fiber/v2"

	"smarta/internal/domain"
)

func (s *Server) handleCoachHistory(c *fiber.Ctx) error {
	if err := s.loggedIn(c); err != nil {
		return err
	}
	msgs, err := s.coach.History(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(msgs)
}

type askRequest struct {
	Text string `json:"text"`
}

type askResponse struct {
	Message domain.ChatMessage `json:"message"`
	Reply   domain.ChatMessage `json:"reply"`
}

// handleCoachAsk waits for the coach's reply before responding.
func (s *Server) handleCoachAsk(c *fiber.Ctx) error {
	if err := s.loggedIn(c); err != nil {
		return err
	}
	var req askRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(err)
	}
	ctx := c.UserContext()
	msg, reply, err := s.coach.Ask(ctx, req.Text)
	if err != nil {
		return err
	}
	select {
	case ai := <-reply:
		return c.Status(fiber.StatusCreated).JSON(askResponse{Message: msg, Reply: ai})
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Server) handleCoachSuggestions(c *fiber.Ctx) error {
	if err := s.loggedIn(c); err != nil {
		return err
	}
	qs := s.coach.Suggestions()
	if qs == nil {
		qs = []string{}
	}
	return c.JSON(qs)
}
