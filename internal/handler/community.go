package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vishalgodara/Iota-Financing-Solutions/internal/holiday"
	"github.com/vishalgodara/Iota-Financing-Solutions/internal/mail"
	"github.com/vishalgodara/Iota-Financing-Solutions/internal/model"
	"github.com/vishalgodara/Iota-Financing-Solutions/internal/store"
)

var db *store.Store

// InitStore hands the handlers their database.
func InitStore(s *store.Store) {
	db = s
}

// GetPosts lists discussion posts newest first.
func GetPosts(c *gin.Context) {
	posts, err := db.ListPosts(50)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": posts})
}

type createPostRequest struct {
	Author  string `json:"author" binding:"required"`
	Vehicle string `json:"vehicle"`
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// PostPost creates a discussion post.
func PostPost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post := model.DiscussionPost{
		Author:  req.Author,
		Vehicle: req.Vehicle,
		Title:   req.Title,
		Content: req.Content,
	}
	if err := db.CreatePost(&post); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, post)
}

// PostLike increments a post's like count.
func PostLike(c *gin.Context) {
	if err := db.LikePost(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type appointmentRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	Email        string `json:"email" binding:"required"`
	Phone        string `json:"phone"`
	Model        string `json:"model" binding:"required"`
	TrimName     string `json:"trim_name"`
	Date         string `json:"date" binding:"required"` // YYYY-MM-DD
	TimeSlot     string `json:"time_slot" binding:"required"`
}

// PostAppointment books a test drive on a dealership business day.
func PostAppointment(c *gin.Context) {
	var req appointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}
	if !holiday.IsBusinessDay(date) {
		next := holiday.NextBusinessDay(date)
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":         "dealership closed on requested date",
			"next_open_day": next.Format("2006-01-02"),
		})
		return
	}
	if !holiday.ValidSlot(req.TimeSlot) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "time slot outside showroom hours (09:00-18:00)"})
		return
	}

	taken, err := db.SlotTaken(req.Date, req.TimeSlot)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if taken {
		c.JSON(http.StatusConflict, gin.H{"error": "slot already booked"})
		return
	}

	appt := model.Appointment{
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Phone:        req.Phone,
		Model:        req.Model,
		TrimName:     req.TrimName,
		Date:         req.Date,
		TimeSlot:     req.TimeSlot,
	}
	if err := db.CreateAppointment(&appt); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// Confirmation mail is best effort, booking stands either way.
	go func() {
		if err := mail.SendAppointmentConfirmation(appt); err != nil {
			log.Printf("[APPOINTMENT] confirmation mail failed: %v", err)
		}
	}()

	c.JSON(http.StatusCreated, appt)
}

// GetAppointments lists bookings ordered by date.
func GetAppointments(c *gin.Context) {
	appts, err := db.ListAppointments()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": appts})
}

// GetRewards returns a member's balance, tier, recent activity and the
// reward catalog.
func GetRewards(c *gin.Context) {
	member := c.Param("member")

	points, err := db.MemberPoints(member)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	activities, err := db.MemberActivities(member, 20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.MemberRewards{
		Member:     member,
		Points:     points,
		Tier:       model.TierFor(points),
		Activities: activities,
		Catalog:    model.RewardCatalog,
	})
}

type earnRequest struct {
	Member string `json:"member" binding:"required"`
	Action string `json:"action" binding:"required"`
	Points int    `json:"points" binding:"required"`
}

// PostEarn records earned points on a member's ledger.
func PostEarn(c *gin.Context) {
	var req earnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Points <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "points must be positive"})
		return
	}

	if err := db.AddPoints(req.Member, req.Action, req.Points); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	points, err := db.MemberPoints(req.Member)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"points": points,
		"tier":   model.TierFor(points),
	})
}

type redeemRequest struct {
	Member string `json:"member" binding:"required"`
	Reward string `json:"reward" binding:"required"`
}

// PostRedeem exchanges points for a catalog reward.
func PostRedeem(c *gin.Context) {
	var req redeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reward, ok := model.FindReward(req.Reward)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown reward"})
		return
	}

	remaining, err := db.Redeem(req.Member, reward)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"points": remaining,
		"tier":   model.TierFor(remaining),
		"reward": reward,
	})
}
