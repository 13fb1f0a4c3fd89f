package server

import (
	"github.com/gofiber/fiber/v2"

	"smarta/internal/domain"
	"smarta/internal/navigation"
)

type sessionResponse struct {
	Session domain.Session  `json:"session"`
	View    navigation.View `json:"view"`
}

func (s *Server) respondSession(c *fiber.Ctx, sess domain.Session, err error) error {
	if err != nil {
		return err
	}
	return c.JSON(sessionResponse{Session: sess, View: navigation.Render(sess)})
}

func (s *Server) handleSession(c *fiber.Ctx) error {
	sess, err := s.sessions.Current(c.UserContext())
	return s.respondSession(c, sess, err)
}

type actionRequest struct {
	Action domain.Action `json:"action"`
}

func (s *Server) handleAction(c *fiber.Ctx) error {
	var req actionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(err)
	}
	sess, err := s.sessions.Act(c.UserContext(), req.Action)
	return s.respondSession(c, sess, err)
}

type navigateRequest struct {
	Screen string `json:"screen"`
}

func (s *Server) handleNavigate(c *fiber.Ctx) error {
	var req navigateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(err)
	}
	sess, err := s.sessions.Navigate(c.UserContext(), domain.Screen(req.Screen))
	return s.respondSession(c, sess, err)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(err)
	}
	sess, err := s.sessions.Login(c.UserContext(), req.Email, req.Password)
	return s.respondSession(c, sess, err)
}

func (s *Server) handleLogout(c *fiber.Ctx) error {
	sess, err := s.sessions.Logout(c.UserContext())
	return s.respondSession(c, sess, err)
}

type pinRequest struct {
	Pin     string `json:"pin"`
	Confirm string `json:"confirm"`
	Current string `json:"current"`
}

func (s *Server) handlePinSetup(c *fiber.Ctx) error {
	var req pinRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(err)
	}
	sess, err := s.sessions.SetupPin(c.UserContext(), req.Pin, req.Confirm)
	return s.respondSession(c, sess, err)
}

func (s *Server) handlePinSkip(c *fiber.Ctx) error {
	sess, err := s.sessions.SkipPin(c.UserContext())
	return s.respondSession(c, sess, err)
}

func (s *Server) handlePinVerify(c *fiber.Ctx) error {
	var req pinRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(err)
	}
	sess, err := s.sessions.VerifyPin(c.UserContext(), req.Pin)
	return s.respondSession(c, sess, err)
}

func (s *Server) handlePinChange(c *fiber.Ctx) error {
	var req pinRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(err)
	}
	if err := s.sessions.ChangePin(c.UserContext(), req.Current, req.Pin, req.Confirm); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleGetSecurity(c *fiber.Ctx) error {
	set, err := s.sessions.Settings(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(set)
}

func (s *Server) handlePutSecurity(c *fiber.Ctx) error {
	var set domain.SecuritySettings
	if err := c.BodyParser(&set); err != nil {
		return badRequest(err)
	}
	set, err := s.sessions.UpdateSettings(c.UserContext(), set)
	if err != nil {
		return err
	}
	return c.JSON(set)
}
