package server

import (
	"github.com/gofiber/fiber/v2"

	"smarta/internal/domain"
	"smarta/internal/finance"
)

func (s *Server) handleAccounts(c *fiber.Ctx) error {
	if err := s.loggedIn(c); err != nil {
		return err
	}
	ov, err := s.banking.Accounts(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(ov)
}

func (s *Server) handleProviders(c *fiber.Ctx) error {
	return c.JSON(finance.Providers(domain.AccountType(c.Query("type"))))
}

func (s *Server) handleConnect(c *fiber.Ctx) error {
	if err := s.loggedIn(c); err != nil {
		return err
	}
	acc, err := s.banking.Connect(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(acc)
}

func (s *Server) handleDisconnect(c *fiber.Ctx) error {
	if err := s.loggedIn(c); err != nil {
		return err
	}
	acc, err := s.banking.Disconnect(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(acc)
}

type linkRequest struct {
	Type     domain.AccountType `json:"type"`
	Provider string             `json:"provider"`
}

func (s *Server) handleLink(c *fiber.Ctx) error {
	if err := s.loggedIn(c); err != nil {
		return err
	}
	var req linkRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(err)
	}
	acc, err := s.banking.Link(c.UserContext(), req.Type, req.Provider)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(acc)
}
