package services

import (
	"sort"
	"strings"

	"bookezy/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

// Hàm chuẩn hóa chuỗi
func NormalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0 // Nếu cả hai chuỗi đều rỗng, tương đồng là 100%
	}

	similarity := 1.0 - float64(distance)/maxLen
	return similarity
}

type scoredID struct {
	id    uint
	score float64
}

// rankByName chấm điểm danh sách tên theo query đã chuẩn hóa,
// trả về các ID có điểm vượt ngưỡng, sắp xếp giảm dần theo điểm
func rankByName(query string, ids []uint, names []string, threshold float64) []uint {
	normalizedQuery := NormalizeInput(query)

	candidates := make([]string, len(names))
	for i, name := range names {
		candidates[i] = NormalizeInput(name)
	}

	var matcherHit string
	if len(candidates) > 0 {
		matcherHit = createMatcher(candidates).Closest(normalizedQuery)
	}

	var scored []scoredID
	for i, candidate := range candidates {
		score := calculateSimilarity(normalizedQuery, candidate)
		if strings.Contains(candidate, normalizedQuery) || candidate == matcherHit {
			score += 0.5
		}
		if score >= threshold {
			scored = append(scored, scoredID{id: ids[i], score: score})
		}
	}

	sort.Slice(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	result := make([]uint, len(scored))
	for i, s := range scored {
		result[i] = s.id
	}
	return result
}

// SearchHotels tìm khách sạn theo tên gần đúng (bỏ dấu, chịu lỗi gõ phím)
func SearchHotels(db *gorm.DB, query string) ([]models.Hotel, error) {
	var hotels []models.Hotel
	if err := db.Find(&hotels).Error; err != nil {
		return nil, err
	}

	ids := make([]uint, len(hotels))
	names := make([]string, len(hotels))
	byID := make(map[uint]models.Hotel, len(hotels))
	for i, h := range hotels {
		ids[i] = h.ID
		names[i] = h.Name
		byID[h.ID] = h
	}

	ranked := rankByName(query, ids, names, 0.4)

	result := make([]models.Hotel, 0, len(ranked))
	for _, id := range ranked {
		result = append(result, byID[id])
	}
	return result, nil
}

// SearchRestaurants tìm nhà hàng theo tên hoặc loại ẩm thực gần đúng
func SearchRestaurants(db *gorm.DB, query string) ([]models.Restaurant, error) {
	var restaurants []models.Restaurant
	if err := db.Find(&restaurants).Error; err != nil {
		return nil, err
	}

	ids := make([]uint, len(restaurants))
	names := make([]string, len(restaurants))
	byID := make(map[uint]models.Restaurant, len(restaurants))
	for i, r := range restaurants {
		ids[i] = r.ID
		names[i] = r.Name + " " + r.CuisineType
		byID[r.ID] = r
	}

	ranked := rankByName(query, ids, names, 0.4)

	result := make([]models.Restaurant, 0, len(ranked))
	for _, id := range ranked {
		result = append(result, byID[id])
	}
	return result, nil
}
