package services

import (
	"sort"
	"strings"

	"hotel-management/dto"
	"hotel-management/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// NormalizeText chuyển về dạng so sánh được: bỏ khoảng trắng thừa, phiên âm latin, chữ thường
func NormalizeText(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return strings.Join(strings.Fields(input), " ")
}

// Similarity tính độ tương đồng giữa hai chuỗi (0..1)
func Similarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	distance := levenshtein.DistanceForStrings(ra, rb, levenshtein.DefaultOptions)
	maxLen := float64(len(ra))
	if float64(len(rb)) > maxLen {
		maxLen = float64(len(rb))
	}

	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

// RankGuestDetails sắp xếp kết quả tìm kiếm theo mức độ liên quan, giữ thứ tự gốc khi bằng điểm.
// Điều kiện không có trường chữ thì trả nguyên thứ tự.
func RankGuestDetails(details []models.GuestDetail, cond dto.GuestSearchCondition) []models.GuestDetail {
	ranked := make([]models.GuestDetail, len(details))
	copy(ranked, details)
	if !cond.HasText() || len(ranked) < 2 {
		return ranked
	}

	nameQuery := NormalizeText(cond.Name)
	kanaQuery := NormalizeText(cond.KanaName)

	closestName := closestCandidate(ranked, nameQuery, func(g models.Guest) string { return g.Name })
	closestKana := closestCandidate(ranked, kanaQuery, func(g models.Guest) string { return g.KanaName })

	scores := make([]float64, len(ranked))
	for i, d := range ranked {
		name := NormalizeText(d.Guest.Name)
		kana := NormalizeText(d.Guest.KanaName)
		var score float64
		if nameQuery != "" {
			score += Similarity(nameQuery, name)
			if name == closestName {
				score += 0.5
			}
		}
		if kanaQuery != "" {
			score += Similarity(kanaQuery, kana)
			if kana == closestKana {
				score += 0.5
			}
		}
		if cond.Phone != "" && d.Guest.Phone == cond.Phone {
			score += 1
		}
		scores[i] = score
	}

	index := make([]int, len(ranked))
	for i := range index {
		index[i] = i
	}
	sort.SliceStable(index, func(a, b int) bool {
		return scores[index[a]] > scores[index[b]]
	})

	out := make([]models.GuestDetail, len(ranked))
	for i, idx := range index {
		out[i] = ranked[idx]
	}
	return out
}

// closestCandidate dùng closestmatch để chọn giá trị gần query nhất trong danh sách
func closestCandidate(details []models.GuestDetail, query string, field func(models.Guest) string) string {
	if query == "" {
		return ""
	}
	keywords := make([]string, 0, len(details))
	for _, d := range details {
		if v := NormalizeText(field(d.Guest)); v != "" {
			keywords = append(keywords, v)
		}
	}
	if len(keywords) == 0 {
		return ""
	}
	return closestmatch.New(keywords, []int{2, 3}).Closest(query)
}
