package works

import "time"

func seedDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// SeedCatalog returns the launch listings in their curated display order.
// Each call returns a fresh slice.
func SeedCatalog() []Artwork {
	return []Artwork{
		{
			ID:          "1",
			Title:       "Digital Dreams",
			Description: "A vibrant digital artwork exploring the intersection of technology and consciousness.",
			Price:       25000,
			Category:    "Digital Art",
			ImageURL:    "https://images.pexels.com/photos/1762851/pexels-photo-1762851.jpeg?auto=compress&cs=tinysrgb&w=800",
			SellerID:    "2",
			SellerName:  "Artist Creator",
			Likes:       24,
			Views:       156,
			CreatedAt:   seedDate("2024-03-15"),
			Watermarked: true,
		},
		{
			ID:          "2",
			Title:       "Neon Nights",
			Description: "Cyberpunk-inspired artwork with glowing neon elements.",
			Price:       35000,
			Category:    "Cyberpunk",
			ImageURL:    "https://images.pexels.com/photos/1809644/pexels-photo-1809644.jpeg?auto=compress&cs=tinysrgb&w=800",
			SellerID:    "2",
			SellerName:  "Artist Creator",
			Likes:       42,
			Views:       289,
			CreatedAt:   seedDate("2024-03-10"),
			Watermarked: true,
		},
		{
			ID:          "3",
			Title:       "Abstract Emotions",
			Description: "An emotional journey through color and form.",
			Price:       18000,
			Category:    "Abstract",
			ImageURL:    "https://images.pexels.com/photos/1509534/pexels-photo-1509534.jpeg?auto=compress&cs=tinysrgb&w=800",
			SellerID:    "2",
			SellerName:  "Artist Creator",
			Likes:       18,
			Views:       92,
			CreatedAt:   seedDate("2024-03-08"),
			Watermarked: true,
		},
		{
			ID:          "4",
			Title:       "Cosmic Voyage",
			Description: "Journey through the stars with this mesmerizing space-themed artwork.",
			Price:       42000,
			Category:    "Space Art",
			ImageURL:    "https://images.pexels.com/photos/1169754/pexels-photo-1169754.jpeg?auto=compress&cs=tinysrgb&w=800",
			SellerID:    "3",
			SellerName:  "Space Artist",
			Likes:       67,
			Views:       234,
			CreatedAt:   seedDate("2024-03-12"),
			Watermarked: true,
		},
		{
			ID:          "5",
			Title:       "Urban Decay",
			Description: "A gritty portrayal of modern city life through digital art.",
			Price:       28000,
			Category:    "Urban Art",
			ImageURL:    "https://images.pexels.com/photos/1563356/pexels-photo-1563356.jpeg?auto=compress&cs=tinysrgb&w=800",
			SellerID:    "4",
			SellerName:  "Urban Explorer",
			Likes:       31,
			Views:       178,
			CreatedAt:   seedDate("2024-03-09"),
			Watermarked: true,
		},
		{
			ID:          "6",
			Title:       "Nature's Symphony",
			Description: "Digital interpretation of natural harmony and balance.",
			Price:       22000,
			Category:    "Nature Art",
			ImageURL:    "https://images.pexels.com/photos/1323550/pexels-photo-1323550.jpeg?auto=compress&cs=tinysrgb&w=800",
			SellerID:    "5",
			SellerName:  "Nature Lover",
			Likes:       45,
			Views:       201,
			CreatedAt:   seedDate("2024-03-11"),
			Watermarked: true,
		},
		{
			ID:          "7",
			Title:       "Geometric Harmony",
			Description: "Perfect balance of shapes and colors in digital form.",
			Price:       33000,
			Category:    "Geometric",
			ImageURL:    "https://images.pexels.com/photos/1194420/pexels-photo-1194420.jpeg?auto=compress&cs=tinysrgb&w=800",
			SellerID:    "6",
			SellerName:  "Geo Master",
			Likes:       29,
			Views:       145,
			CreatedAt:   seedDate("2024-03-07"),
			Watermarked: true,
		},
		{
			ID:          "8",
			Title:       "Digital Portrait",
			Description: "Stunning digital portrait showcasing human emotion.",
			Price:       38000,
			Category:    "Portrait",
			ImageURL:    "https://images.pexels.com/photos/1239291/pexels-photo-1239291.jpeg?auto=compress&cs=tinysrgb&w=800",
			SellerID:    "7",
			SellerName:  "Portrait Pro",
			Likes:       52,
			Views:       267,
			CreatedAt:   seedDate("2024-03-13"),
			Watermarked: true,
		},
		{
			ID:          "9",
			Title:       "Futuristic City",
			Description: "Vision of tomorrow's urban landscape.",
			Price:       45000,
			Category:    "Futuristic",
			ImageURL:    "https://images.pexels.com/photos/1181263/pexels-photo-1181263.jpeg?auto=compress&cs=tinysrgb&w=800",
			SellerID:    "8",
			SellerName:  "Future Vision",
			Likes:       73,
			Views:       312,
			CreatedAt:   seedDate("2024-03-14"),
			Watermarked: true,
		},
		{
			ID:          "10",
			Title:       "Minimalist Beauty",
			Description: "Less is more - elegant minimalist digital art.",
			Price:       19000,
			Category:    "Minimalist",
			ImageURL:    "https://images.pexels.com/photos/1183992/pexels-photo-1183992.jpeg?auto=compress&cs=tinysrgb&w=800",
			SellerID:    "9",
			SellerName:  "Minimal Artist",
			Likes:       36,
			Views:       189,
			CreatedAt:   seedDate("2024-03-06"),
			Watermarked: true,
		},
		{
			ID:          "11",
			Title:       "Ocean Dreams",
			Description: "Dive into the depths of digital ocean artistry.",
			Price:       31000,
			Category:    "Ocean Art",
			ImageURL:    "https://images.pexels.com/photos/1076758/pexels-photo-1076758.jpeg?auto=compress&cs=tinysrgb&w=800",
			SellerID:    "10",
			SellerName:  "Ocean Artist",
			Likes:       41,
			Views:       198,
			CreatedAt:   seedDate("2024-03-05"),
			Watermarked: true,
		},
		{
			ID:          "12",
			Title:       "Fire & Ice",
			Description: "The eternal battle between opposing forces.",
			Price:       39000,
			Category:    "Elemental",
			ImageURL:    "https://images.pexels.com/photos/1054218/pexels-photo-1054218.jpeg?auto=compress&cs=tinysrgb&w=800",
			SellerID:    "11",
			SellerName:  "Element Master",
			Likes:       58,
			Views:       245,
			CreatedAt:   seedDate("2024-03-04"),
			Watermarked: true,
		},
		{
			ID:          "13",
			Title:       "Mystic Forest",
			Description: "Enchanted forest scene with magical elements.",
			Price:       27000,
			Category:    "Fantasy",
			ImageURL:    "https://images.pexels.com/photos/1563356/pexels-photo-1563356.jpeg?auto=compress&cs=tinysrgb&w=800",
			SellerID:    "12",
			SellerName:  "Fantasy Creator",
			Likes:       34,
			Views:       167,
			CreatedAt:   seedDate("2024-03-03"),
			Watermarked: true,
		},
		{
			ID:          "14",
			Title:       "Retro Wave",
			Description: "Nostalgic 80s-inspired digital artwork.",
			Price:       24000,
			Category:    "Retro",
			ImageURL:    "https://images.pexels.com/photos/1169754/pexels-photo-1169754.jpeg?auto=compress&cs=tinysrgb&w=800",
			SellerID:    "13",
			SellerName:  "Retro Master",
			Likes:       47,
			Views:       203,
			CreatedAt:   seedDate("2024-03-02"),
			Watermarked: true,
		},
		{
			ID:          "15",
			Title:       "Digital Mandala",
			Description: "Intricate mandala design with digital precision.",
			Price:       21000,
			Category:    "Spiritual",
			ImageURL:    "https://images.pexels.com/photos/1323550/pexels-photo-1323550.jpeg?auto=compress&cs=tinysrgb&w=800",
			SellerID:    "14",
			SellerName:  "Spiritual Artist",
			Likes:       39,
			Views:       156,
			CreatedAt:   seedDate("2024-03-01"),
			Watermarked: true,
		},
		{
			ID:          "16",
			Title:       "Cyber Samurai",
			Description: "Traditional warrior meets futuristic technology.",
			Price:       48000,
			Category:    "Cyberpunk",
			ImageURL:    "https://images.pexels.com/photos/1809644/pexels-photo-1809644.jpeg?auto=compress&cs=tinysrgb&w=800",
			SellerID:    "15",
			SellerName:  "Cyber Artist",
			Likes:       62,
			Views:       278,
			CreatedAt:   seedDate("2024-02-28"),
			Watermarked: true,
		},
		{
			ID:          "17",
			Title:       "Liquid Gold",
			Description: "Flowing metallic textures in digital form.",
			Price:       35000,
			Category:    "Abstract",
			ImageURL:    "https://images.pexels.com/photos/1509534/pexels-photo-1509534.jpeg?auto=compress&cs=tinysrgb&w=800",
			SellerID:    "16",
			SellerName:  "Texture Master",
			Likes:       44,
			Views:       189,
			CreatedAt:   seedDate("2024-02-27"),
			Watermarked: true,
		},
		{
			ID:          "18",
			Title:       "Neon Genesis",
			Description: "Birth of a digital world in neon colors.",
			Price:       41000,
			Category:    "Futuristic",
			ImageURL:    "https://images.pexels.com/photos/1181263/pexels-photo-1181263.jpeg?auto=compress&cs=tinysrgb&w=800",
			SellerID:    "17",
			SellerName:  "Genesis Creator",
			Likes:       56,
			Views:       234,
			CreatedAt:   seedDate("2024-02-26"),
			Watermarked: true,
		},
		{
			ID:          "19",
			Title:       "Digital Butterfly",
			Description: "Delicate butterfly rendered in stunning detail.",
			Price:       23000,
			Category:    "Nature Art",
			ImageURL:    "https://images.pexels.com/photos/1076758/pexels-photo-1076758.jpeg?auto=compress&cs=tinysrgb&w=800",
			SellerID:    "18",
			SellerName:  "Nature Digital",
			Likes:       38,
			Views:       145,
			CreatedAt:   seedDate("2024-02-25"),
			Watermarked: true,
		},
		{
			ID:          "20",
			Title:       "Quantum Realm",
			Description: "Exploration of quantum physics through art.",
			Price:       52000,
			Category:    "Science Art",
			ImageURL:    "https://images.pexels.com/photos/1194420/pexels-photo-1194420.jpeg?auto=compress&cs=tinysrgb&w=800",
			SellerID:    "19",
			SellerName:  "Quantum Artist",
			Likes:       71,
			Views:       298,
			CreatedAt:   seedDate("2024-02-24"),
			Watermarked: true,
		},
	}
}
