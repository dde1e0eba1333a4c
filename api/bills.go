package api

import (
	"github.com/labstack/echo"
	"go.uber.org/zap"

	"github.com/akojamsy/voting-system/tally"
	"github.com/akojamsy/voting-system/types"
)

type billUpdateRequest struct {
	Title       string           `json:"title" validate:"required,max=200"`
	Description string           `json:"description" validate:"max=5000"`
	Category    string           `json:"category" validate:"required,max=100"`
	Status      types.BillStatus `json:"status" validate:"required"`
}

type voteRequest struct {
	Vote types.VoteChoice `json:"vote" validate:"required"`
}

func (s *Server) Bills(c echo.Context) error {
	filter := types.BillFilter{}
	if status := c.QueryParam("status"); status != "" {
		parsed, err := types.ParseBillStatus(status)
		if err != nil {
			return errResponse(err).Build(c)
		}
		filter.Status = parsed
	}
	pagination, page, limit := getPagingOption(c)
	filter.Pagination = pagination
	bills, total := s.voting.ListBills(filter)
	if pagination == nil {
		page, limit = 1, total
	}
	reports := make([]tally.BillReport, 0, len(bills))
	for _, b := range bills {
		report, err := s.voting.BillReport(b.ID)
		if err != nil {
			continue
		}
		reports = append(reports, report)
	}
	return OK.SetData(PagingResponse{
		Page:  page,
		Limit: limit,
		Total: total,
		Data:  reports,
	}).Build(c)
}

func (s *Server) ActiveBill(c echo.Context) error {
	bill, ok := s.voting.ActiveBill()
	if !ok {
		return NotFound.SetMsg("no bill is open for voting").Build(c)
	}
	report, err := s.voting.BillReport(bill.ID)
	if err != nil {
		return errResponse(err).Build(c)
	}
	return OK.SetData(report).Build(c)
}

func (s *Server) Bill(c echo.Context) error {
	billID, ok := paramID(c, "billID")
	if !ok {
		return Invalid.Build(c)
	}
	report, err := s.voting.BillReport(billID)
	if err != nil {
		return errResponse(err).Build(c)
	}
	return OK.SetData(report).Build(c)
}

func (s *Server) CreateBill(c echo.Context) error {
	lgr := s.logger.With(zap.String("method", "CreateBill"))
	var fields types.BillFields
	if err := c.Bind(&fields); err != nil {
		return Invalid.Build(c)
	}
	if err := c.Validate(&fields); err != nil {
		return Invalid.SetMsg(err.Error()).Build(c)
	}
	ctx, cancel := s.requestContext(c)
	defer cancel()
	bill, err := s.voting.CreateBill(ctx, fields)
	if err != nil {
		lgr.Error("Cannot create bill", zap.Error(err))
		return errResponse(err).Build(c)
	}
	return OK.SetData(bill).Build(c)
}

func (s *Server) UpdateBill(c echo.Context) error {
	lgr := s.logger.With(zap.String("method", "UpdateBill"))
	billID, ok := paramID(c, "billID")
	if !ok {
		return Invalid.Build(c)
	}
	var req billUpdateRequest
	if err := c.Bind(&req); err != nil {
		lgr.Debug("Cannot bind bill", zap.Error(err))
		return Invalid.Build(c)
	}
	if err := c.Validate(&req); err != nil {
		return Invalid.SetMsg(err.Error()).Build(c)
	}
	bill, err := s.voting.Bill(billID)
	if err != nil {
		return errResponse(err).Build(c)
	}
	bill.Title = req.Title
	bill.Description = req.Description
	bill.Category = req.Category
	bill.Status = req.Status

	ctx, cancel := s.requestContext(c)
	defer cancel()
	bill, err = s.voting.UpdateBill(ctx, bill)
	if err != nil {
		lgr.Error("Cannot update bill", zap.Int64("billID", billID), zap.Error(err))
		return errResponse(err).Build(c)
	}
	return OK.SetData(bill).Build(c)
}

func (s *Server) CloseVoting(c echo.Context) error {
	lgr := s.logger.With(zap.String("method", "CloseVoting"))
	billID, ok := paramID(c, "billID")
	if !ok {
		return Invalid.Build(c)
	}
	ctx, cancel := s.requestContext(c)
	defer cancel()
	bill, err := s.voting.CloseVoting(ctx, billID)
	if err != nil {
		lgr.Warn("Cannot close voting", zap.Int64("billID", billID), zap.Error(err))
		return errResponse(err).Build(c)
	}
	report, err := s.voting.BillReport(bill.ID)
	if err != nil {
		return errResponse(err).Build(c)
	}
	return OK.SetData(report).Build(c)
}

func (s *Server) BillVotes(c echo.Context) error {
	billID, ok := paramID(c, "billID")
	if !ok {
		return Invalid.Build(c)
	}
	records, err := s.voting.VotesForBill(billID)
	if err != nil {
		return errResponse(err).Build(c)
	}
	return OK.SetData(records).Build(c)
}

func (s *Server) CastVote(c echo.Context) error {
	lgr := s.logger.With(zap.String("method", "CastVote"))
	billID, ok := paramID(c, "billID")
	if !ok {
		return Invalid.Build(c)
	}
	user, ok := currentUser(c)
	if !ok {
		return Unauthorized.Build(c)
	}
	var req voteRequest
	if err := c.Bind(&req); err != nil {
		return Invalid.SetMsg(types.ErrInvalidVote.Error()).Build(c)
	}
	if err := c.Validate(&req); err != nil {
		return Invalid.SetMsg(err.Error()).Build(c)
	}
	ctx, cancel := s.requestContext(c)
	defer cancel()
	vote, err := s.voting.SubmitVote(ctx, billID, user.ID, req.Vote)
	if err != nil {
		lgr.Info("Vote rejected", zap.Int64("billID", billID), zap.Int64("userID", user.ID), zap.Error(err))
		return errResponse(err).Build(c)
	}
	return OK.SetData(vote).Build(c)
}

func (s *Server) MyVotes(c echo.Context) error {
	user, ok := currentUser(c)
	if !ok {
		return Unauthorized.Build(c)
	}
	return OK.SetData(s.voting.VotingHistory(user.ID)).Build(c)
}
