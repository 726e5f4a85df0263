package backend

import (
	"context"
	"time"

	domainErrors "github.com/tnyamakura/loyaltylink/internal/domain/errors"
	"github.com/tnyamakura/loyaltylink/internal/domain/model"
	"github.com/tnyamakura/loyaltylink/internal/domain/provider"
	"github.com/tnyamakura/loyaltylink/internal/session"
)

// Guest serves deterministic fixtures when the active session is a guest
// session. It sits at the head of every fallback chain and steps aside with
// ErrNotGuest for real sessions, so guests never generate network traffic and
// authenticated users never see fixture data.
type Guest struct {
	sessions *session.Store
}

// NewGuest creates the fixture provider.
func NewGuest(sessions *session.Store) *Guest {
	return &Guest{sessions: sessions}
}

func (g *Guest) Name() string { return "guest" }

// gate implements the chain hand-off for real sessions.
func (g *Guest) gate() error {
	if !g.sessions.IsGuest() {
		return domainErrors.ErrNotGuest
	}
	return nil
}

func (g *Guest) LoyaltyPoints(ctx context.Context, userID string) (*model.LoyaltyPoints, error) {
	if err := g.gate(); err != nil {
		return nil, err
	}
	now := time.Now()
	return &model.LoyaltyPoints{
		ID:            "guest-points",
		UserID:        session.GuestUserID,
		PointsBalance: 1500,
		TotalEarned:   2000,
		TotalRedeemed: 500,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// AddPoints is never served from fixtures. Guests fall through to the real
// providers, which reject the unknown user the same way they always did.
func (g *Guest) AddPoints(ctx context.Context, params provider.AddPointsParams) (*model.LoyaltyPoints, error) {
	return nil, domainErrors.ErrUnsupported
}

func (g *Guest) Transactions(ctx context.Context, userID string) ([]model.Transaction, error) {
	if err := g.gate(); err != nil {
		return nil, err
	}
	return []model.Transaction{}, nil
}

func (g *Guest) AdminOverview(ctx context.Context) (*model.AdminOverview, error) {
	if err := g.gate(); err != nil {
		return nil, err
	}
	return &model.AdminOverview{
		TotalUsers:          100,
		ActiveUsers:         50,
		TotalPointsIssued:   10000,
		TotalPointsRedeemed: 2000,
		ActivePoints:        8000,
		TotalPartners:       10,
		ActivePartners:      8,
		TotalQuizzes:        5,
		ActiveQuizzes:       3,
		TotalPromotions:     12,
		ActivePromotions:    7,
	}, nil
}

func (g *Guest) AdminUsers(ctx context.Context) ([]model.User, error) {
	if err := g.gate(); err != nil {
		return nil, err
	}
	now := time.Now()
	return []model.User{
		{ID: "gu1", Email: "guest1@example.com", FirstName: "Guest", LastName: "One", Role: model.RoleUser, IsActive: true, CreatedAt: now},
		{ID: "gu2", Email: "guest2@example.com", FirstName: "Guest", LastName: "Two", Role: model.RoleUser, IsActive: true, CreatedAt: now},
	}, nil
}

func (g *Guest) AdminPartners(ctx context.Context) ([]model.Partner, error) {
	if err := g.gate(); err != nil {
		return nil, err
	}
	return []model.Partner{
		{ID: "gp1", Name: "Guest Partner 1", Type: "RESTAURANT", Status: "ACTIVE"},
		{ID: "gp2", Name: "Guest Partner 2", Type: "RETAIL", Status: "ACTIVE"},
	}, nil
}

func (g *Guest) AdminQuizzes(ctx context.Context) ([]model.Quiz, error) {
	if err := g.gate(); err != nil {
		return nil, err
	}
	return []model.Quiz{
		{ID: "gq1", Title: "Guest Quiz 1", Category: "General", DifficultyLevel: "easy"},
		{ID: "gq2", Title: "Guest Quiz 2", Category: "Science", DifficultyLevel: "medium"},
	}, nil
}

func (g *Guest) AdminPromotions(ctx context.Context) ([]model.Promotion, error) {
	if err := g.gate(); err != nil {
		return nil, err
	}
	return []model.Promotion{
		{ID: "gpr1", Name: "Guest Promo 1", Type: "DISCOUNT", Status: "ACTIVE"},
		{ID: "gpr2", Name: "Guest Promo 2", Type: "BONUS_POINTS", Status: "ACTIVE"},
	}, nil
}

func (g *Guest) CreateUser(ctx context.Context, user model.User) (*model.User, error) {
	if err := g.gate(); err != nil {
		return nil, err
	}
	user.ID = "new-guest-user"
	return &user, nil
}

func (g *Guest) UpdateUser(ctx context.Context, id string, user model.User) (*model.User, error) {
	if err := g.gate(); err != nil {
		return nil, err
	}
	user.ID = id
	return &user, nil
}

func (g *Guest) DeleteUser(ctx context.Context, id string) error {
	return g.gate()
}

func (g *Guest) CreatePartner(ctx context.Context, partner model.Partner) (*model.Partner, error) {
	if err := g.gate(); err != nil {
		return nil, err
	}
	partner.ID = "new-guest-partner"
	return &partner, nil
}

func (g *Guest) UpdatePartner(ctx context.Context, id string, partner model.Partner) (*model.Partner, error) {
	if err := g.gate(); err != nil {
		return nil, err
	}
	partner.ID = id
	return &partner, nil
}

func (g *Guest) DeletePartner(ctx context.Context, id string) error {
	return g.gate()
}

func (g *Guest) CreateQuiz(ctx context.Context, quiz model.Quiz) (*model.Quiz, error) {
	if err := g.gate(); err != nil {
		return nil, err
	}
	quiz.ID = "new-guest-quiz"
	return &quiz, nil
}

func (g *Guest) UpdateQuiz(ctx context.Context, id string, quiz model.Quiz) (*model.Quiz, error) {
	if err := g.gate(); err != nil {
		return nil, err
	}
	quiz.ID = id
	return &quiz, nil
}

func (g *Guest) DeleteQuiz(ctx context.Context, id string) error {
	return g.gate()
}

func (g *Guest) CreatePromotion(ctx context.Context, promo model.Promotion) (*model.Promotion, error) {
	if err := g.gate(); err != nil {
		return nil, err
	}
	promo.ID = "new-guest-promotion"
	return &promo, nil
}

func (g *Guest) UpdatePromotion(ctx context.Context, id string, promo model.Promotion) (*model.Promotion, error) {
	if err := g.gate(); err != nil {
		return nil, err
	}
	promo.ID = id
	return &promo, nil
}

func (g *Guest) DeletePromotion(ctx context.Context, id string) error {
	return g.gate()
}

func (g *Guest) RegenerateQuizQuestions(ctx context.Context, quizID string) error {
	return g.gate()
}

func (g *Guest) GenerateQuiz(ctx context.Context, params provider.GenerateQuizParams) ([]model.QuizQuestion, error) {
	if err := g.gate(); err != nil {
		return nil, err
	}
	return []model.QuizQuestion{
		{
			ID:            "gq1",
			QuestionText:  "Guest Question 1",
			QuestionType:  "MULTIPLE_CHOICE",
			Options:       "Option A|Option B|Option C",
			CorrectAnswer: "Option A",
			Explanation:   "This is a dummy explanation.",
			Difficulty:    "easy",
			Points:        10,
		},
		{
			ID:            "gq2",
			QuestionText:  "Guest Question 2",
			QuestionType:  "TRUE_FALSE",
			Options:       "True|False",
			CorrectAnswer: "True",
			Explanation:   "Another dummy explanation.",
			Difficulty:    "medium",
			Points:        20,
		},
	}, nil
}

func (g *Guest) SubmitQuiz(ctx context.Context, params provider.SubmitQuizParams) (*model.QuizResult, error) {
	if err := g.gate(); err != nil {
		return nil, err
	}
	return &model.QuizResult{Success: true, Score: 80, PointsEarned: 50}, nil
}

func (g *Guest) QuizCategories(ctx context.Context) ([]string, error) {
	if err := g.gate(); err != nil {
		return nil, err
	}
	return []string{"General", "Science", "History", "Technology"}, nil
}

func (g *Guest) QuizDifficultyLevels(ctx context.Context) ([]string, error) {
	if err := g.gate(); err != nil {
		return nil, err
	}
	return []string{"easy", "medium", "hard"}, nil
}

func (g *Guest) QuizByID(ctx context.Context, quizID string) (*model.Quiz, error) {
	if err := g.gate(); err != nil {
		return nil, err
	}
	return &model.Quiz{
		ID:               quizID,
		Title:            "Guest Quiz Title",
		Description:      "This is a dummy quiz for guest users.",
		Category:         "General",
		DifficultyLevel:  "easy",
		PointsReward:     100,
		TimeLimitMinutes: 5,
	}, nil
}

func (g *Guest) QuizQuestions(ctx context.Context, quizID string) ([]model.QuizQuestion, error) {
	if err := g.gate(); err != nil {
		return nil, err
	}
	return []model.QuizQuestion{
		{
			ID:            "q1",
			QuestionText:  "What is the capital of France?",
			QuestionType:  "MULTIPLE_CHOICE",
			Options:       "Paris|London|Berlin|Madrid",
			CorrectAnswer: "Paris",
			Explanation:   "Paris is the capital and most populous city of France.",
			Difficulty:    "easy",
			Points:        10,
		},
		{
			ID:            "q2",
			QuestionText:  "Which planet is known as the Red Planet?",
			QuestionType:  "MULTIPLE_CHOICE",
			Options:       "Earth|Mars|Jupiter|Venus",
			CorrectAnswer: "Mars",
			Explanation:   "Mars is often referred to as the Red Planet due to its reddish appearance.",
			Difficulty:    "medium",
			Points:        20,
		},
		{
			ID:            "q3",
			QuestionText:  "What is the largest ocean on Earth?",
			QuestionType:  "MULTIPLE_CHOICE",
			Options:       "Atlantic|Indian|Arctic|Pacific",
			CorrectAnswer: "Pacific",
			Explanation:   "The Pacific Ocean is the largest and deepest of Earth's five oceanic divisions.",
			Difficulty:    "hard",
			Points:        30,
		},
	}, nil
}

func (g *Guest) NearbyPartners(ctx context.Context) ([]model.Partner, error) {
	if err := g.gate(); err != nil {
		return nil, err
	}
	return []model.Partner{
		{
			ID:                "p1",
			Name:              "Guest Restaurant",
			Type:              "RESTAURANT",
			Location:          "Guest City",
			Status:            "ACTIVE",
			Commission:        0.1,
			Rating:            4.5,
			ContactEmail:      "guest@example.com",
			ContactPhone:      "123-456-7890",
			BusinessHours:     "9 AM - 10 PM",
			Latitude:          -17.8252,
			Longitude:         31.0335,
			Distance:          1.2,
			CurrentPromotions: []model.PartnerPromotion{{Title: "Guest Discount"}},
		},
		{
			ID:                "p2",
			Name:              "Guest Shop",
			Type:              "RETAIL",
			Location:          "Guest City",
			Status:            "ACTIVE",
			Commission:        0.05,
			Rating:            4.0,
			ContactEmail:      "guest2@example.com",
			ContactPhone:      "098-765-4321",
			BusinessHours:     "10 AM - 8 PM",
			Latitude:          -17.8300,
			Longitude:         31.0400,
			Distance:          2.5,
			CurrentPromotions: []model.PartnerPromotion{{Title: "Guest Offer"}},
		},
	}, nil
}

func (g *Guest) PartnerDetails(ctx context.Context, partnerID string) (*model.Partner, error) {
	if err := g.gate(); err != nil {
		return nil, err
	}
	return &model.Partner{
		ID:                partnerID,
		Name:              "Guest Partner",
		Type:              "GENERIC",
		Location:          "Guest Location",
		Status:            "ACTIVE",
		CurrentPromotions: []model.PartnerPromotion{},
	}, nil
}

func (g *Guest) CheckIn(ctx context.Context, partnerID string) (*model.OpResult, error) {
	if err := g.gate(); err != nil {
		return nil, err
	}
	return &model.OpResult{Success: true, Message: "Guest check-in simulated."}, nil
}

func (g *Guest) VerifyLocation(ctx context.Context, params provider.VerifyLocationParams) (*model.OpResult, error) {
	if err := g.gate(); err != nil {
		return nil, err
	}
	return &model.OpResult{Success: true, Message: "Guest location verification simulated."}, nil
}

func (g *Guest) WatchAd(ctx context.Context, userID, adID, adTitle string) (*model.OpResult, error) {
	if err := g.gate(); err != nil {
		return nil, err
	}
	return &model.OpResult{Success: true, Message: "Guest ad watch simulated."}, nil
}

func (g *Guest) AdProgress(ctx context.Context, userID string) (*model.AdProgress, error) {
	if err := g.gate(); err != nil {
		return nil, err
	}
	return &model.AdProgress{WatchedAds: 5, TotalAds: 10, Progress: 0.5}, nil
}

func (g *Guest) AvailableAds(ctx context.Context) ([]model.Ad, error) {
	if err := g.gate(); err != nil {
		return nil, err
	}
	return []model.Ad{
		{ID: "ad1", Title: "Guest Ad 1", Description: "Watch this ad for points!"},
		{ID: "ad2", Title: "Guest Ad 2", Description: "Another exciting ad!"},
	}, nil
}

func (g *Guest) PaymentMethods(ctx context.Context) ([]model.PaymentMethod, error) {
	if err := g.gate(); err != nil {
		return nil, err
	}
	now := time.Now()
	return []model.PaymentMethod{
		{
			ID:          "pm1",
			Type:        "CREDIT_CARD",
			Last4:       "1111",
			Brand:       "Visa",
			ExpiryMonth: 12,
			ExpiryYear:  2025,
			IsDefault:   true,
			IsActive:    true,
			CreatedAt:   now,
		},
		{
			ID:        "pm2",
			Type:      "MOBILE_MONEY",
			Last4:     "5555",
			Brand:     "EcoCash",
			IsActive:  true,
			CreatedAt: now,
		},
	}, nil
}

func (g *Guest) AddPaymentMethod(ctx context.Context, method model.PaymentMethod) (*model.PaymentMethod, error) {
	if err := g.gate(); err != nil {
		return nil, err
	}
	method.ID = "new-guest-payment-method"
	return &method, nil
}

func (g *Guest) SubscriptionPlans(ctx context.Context) ([]model.SubscriptionPlan, error) {
	if err := g.gate(); err != nil {
		return nil, err
	}
	return []model.SubscriptionPlan{
		{
			ID:          "plan1",
			Name:        "Basic Plan",
			Description: "Access to core features",
			Price:       9.99,
			Currency:    "USD",
			Interval:    "MONTHLY",
			Features:    []string{"Feature A", "Feature B"},
			IsActive:    true,
		},
		{
			ID:          "plan2",
			Name:        "Premium Plan",
			Description: "Unlock all features",
			Price:       19.99,
			Currency:    "USD",
			Interval:    "MONTHLY",
			Features:    []string{"Feature A", "Feature B", "Feature C", "Feature D"},
			IsPopular:   true,
			IsActive:    true,
		},
	}, nil
}

func (g *Guest) Subscribe(ctx context.Context, planID, paymentMethodID string) (*model.OpResult, error) {
	if err := g.gate(); err != nil {
		return nil, err
	}
	return &model.OpResult{Success: true, Message: "Guest subscription simulated."}, nil
}

func (g *Guest) GenerateQR(ctx context.Context, params provider.GenerateQRParams) (*model.QRCode, error) {
	if err := g.gate(); err != nil {
		return nil, err
	}
	return &model.QRCode{
		ID:           "guest-qr",
		Type:         params.Type,
		Data:         "guest-generated-qr",
		PointsAmount: params.PointsAmount,
		Status:       model.QRCodeActive,
		Description:  params.Description,
		CreatedAt:    time.Now(),
	}, nil
}

func (g *Guest) ScanQR(ctx context.Context, qrData string) (*model.OpResult, error) {
	if err := g.gate(); err != nil {
		return nil, err
	}
	return &model.OpResult{Success: true, Message: "Guest QR code scan simulated.", PointsEarned: 25}, nil
}

func (g *Guest) QRHistory(ctx context.Context) ([]model.QRCode, error) {
	if err := g.gate(); err != nil {
		return nil, err
	}
	now := time.Now()
	expires := now.Add(time.Hour)
	used := now
	return []model.QRCode{
		{
			ID:           "qr1",
			Type:         "POINTS",
			Data:         "guest-points-qr",
			PointsAmount: 50,
			Status:       model.QRCodeActive,
			ExpiresAt:    &expires,
			CreatedAt:    now,
			Description:  "Guest points QR code",
		},
		{
			ID:          "qr2",
			Type:        "CHECKIN",
			Data:        "guest-checkin-qr",
			Status:      model.QRCodeUsed,
			UsedAt:      &used,
			UsedBy:      session.GuestUserID,
			CreatedAt:   now.Add(-24 * time.Hour),
			Description: "Guest check-in QR code",
		},
	}, nil
}

func (g *Guest) AnalyzeSentiment(ctx context.Context, text string) (*model.SentimentAnalysis, error) {
	if err := g.gate(); err != nil {
		return nil, err
	}
	return &model.SentimentAnalysis{
		Sentiment:     "positive",
		Score:         0.8,
		Confidence:    0.95,
		PositiveWords: []string{"love", "amazing", "great"},
		NegativeWords: []string{},
		Suggestions:   []string{"Share your positive feedback with the merchant!"},
		EmotionalTone: "joyful",
	}, nil
}

func (g *Guest) Recommendations(ctx context.Context, userID string, userData map[string]any) ([]model.Recommendation, error) {
	if err := g.gate(); err != nil {
		return nil, err
	}
	return []model.Recommendation{
		{
			ID:             "rec1",
			Type:           "EARNING_TIP",
			Title:          "Double Points at Nandos",
			Description:    "Visit Nandos this weekend to earn double points on all purchases.",
			Confidence:     0.95,
			Priority:       "HIGH",
			ActionRequired: true,
			EstimatedValue: 100,
			Category:       "Dining",
		},
		{
			ID:             "rec2",
			Type:           "REDEMPTION_OPPORTUNITY",
			Title:          "Discount on Pick n Pay",
			Description:    "You have enough points to get a $5 discount at Pick n Pay.",
			Confidence:     0.9,
			Priority:       "MEDIUM",
			ActionRequired: true,
			EstimatedValue: 50,
			Category:       "Groceries",
		},
		{
			ID:             "rec3",
			Type:           "PERSONALIZED_OFFER",
			Title:          "Edgars Fashion Offer",
			Description:    "Based on your shopping habits, here is a 10% discount voucher for Edgars.",
			Confidence:     0.85,
			Priority:       "MEDIUM",
			ActionRequired: true,
			EstimatedValue: 75,
			Category:       "Retail",
		},
	}, nil
}

func (g *Guest) PredictiveInsights(ctx context.Context, userID string, userData map[string]any) ([]model.PredictiveInsight, error) {
	if err := g.gate(); err != nil {
		return nil, err
	}
	return []model.PredictiveInsight{
		{
			ID:                 "pi1",
			Type:               "CHURN_RISK",
			Title:              "Potential Churn Risk",
			Description:        "Your engagement has been decreasing. We miss you!",
			Probability:        0.75,
			Timeframe:          "Next 30 days",
			Actionable:         true,
			RecommendedActions: []string{"Complete a quiz", "Visit a partner store"},
			Impact:             "HIGH",
		},
		{
			ID:                 "pi2",
			Type:               "ENGAGEMENT_OPPORTUNITY",
			Title:              "New Partner Nearby",
			Description:        "A new partner store, \"The Book Nook\", has opened near you. Visit them to earn bonus points.",
			Probability:        0.9,
			Timeframe:          "This week",
			Actionable:         true,
			RecommendedActions: []string{"Visit The Book Nook"},
			Impact:             "MEDIUM",
		},
	}, nil
}

func (g *Guest) BehaviorPatterns(ctx context.Context, userID string, userData map[string]any) ([]model.BehaviorPattern, error) {
	if err := g.gate(); err != nil {
		return nil, err
	}
	return []model.BehaviorPattern{
		{
			Category:        "Dining",
			Frequency:       2,
			AverageValue:    75,
			Trend:           "STABLE",
			Seasonality:     true,
			PeakTimes:       []string{"Weekends", "Evenings"},
			Recommendations: []string{"Try the new menu at Nandos", "Look for dining offers on weekdays"},
		},
		{
			Category:        "Groceries",
			Frequency:       1,
			AverageValue:    120,
			Trend:           "INCREASING",
			Seasonality:     false,
			PeakTimes:       []string{"Saturday mornings"},
			Recommendations: []string{"Buy fresh produce to earn bonus points", "Create a shopping list to maximize savings"},
		},
	}, nil
}
