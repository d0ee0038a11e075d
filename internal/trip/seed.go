package trip

import "github.com/kuanensn/italy/internal/models"

// seedTrip is the hand-authored itinerary the app ships with.
var seedTrip = models.Trip{
	ID:          "my-italy-trip",
	Title:       "義大利深冬之旅：從西西里到阿爾卑斯",
	Destination: "Italy",
	StartDate:   "2024-12-21",
	Days: []models.DayPlan{
		{
			Day: 1, Date: "12/21 (日)", Location: "桃園 -> 上海",
			Weather: models.Weather{Temp: "15°C", Condition: "多雲", Icon: "☁️", RainProb: "10%", UVIndex: "低 (2)", OutfitAdvice: "舒適輕便的長袖衣物，適合長時間飛行。", SunProtection: "無須特別防曬。"},
			Items: []models.ItineraryItem{
				{ID: "d1-1", Type: models.ItineraryTransport, Time: "15:30", Name: "桃園機場集合", Location: "TPE 第二航廈", Description: "集合報到，準備出發。", TransportCode: "MU 5006", Terminal: "T2", Status: "準點", Tips: []string{"16:00 東方航空櫃檯報到", "18:00 抵達登機口"}},
				{ID: "d1-2", Type: models.ItineraryTransport, Time: "18:40", Name: "飛往上海", Location: "TPE -> PVG", Description: "航程 1h45m，20:25 抵達浦東機場 T1。", TransportCode: "MU 5006", Terminal: "T2", Status: "準點"},
				{ID: "d1-3", Type: models.ItineraryAttraction, Time: "20:30", Name: "浦東機場轉機休息", Location: "PVG T1", Description: "等待轉機，休息時間約 4 小時。"},
			},
		},
		{
			Day: 2, Date: "12/22 (一)", Location: "上海 -> 米蘭 -> 西西里島",
			Weather: models.Weather{Temp: "14°C", Condition: "晴朗", Icon: "☀️", RainProb: "0%", UVIndex: "中 (4)", OutfitAdvice: "西西里島陽光充足但風大，建議穿著防風外套搭配太陽眼鏡。", SunProtection: "建議塗抹 SPF30 防曬乳。"},
			Items: []models.ItineraryItem{
				{ID: "d2-1", Type: models.ItineraryTransport, Time: "01:20", Name: "飛往米蘭", Location: "PVG -> MXP", Description: "航程 12h40m，07:00 抵達米蘭 Malpensa。", TransportCode: "MU 243", Terminal: "T1"},
				{ID: "d2-2", Type: models.ItineraryTransport, Time: "13:05", Name: "轉機飛往西西里", Location: "MXP -> PMO", Description: "Ryanair 航班，隨身行李 40x20x25。"},
				{ID: "d2-3", Type: models.ItineraryAttraction, Time: "18:00", Name: "巴勒莫城市巡禮", Location: "Palermo", Description: "海軍元帥聖母堂、四角廣場、Mercato Ballarò 市場(海鮮)、諾曼王宮、巴勒莫主教座堂。", MustEat: []string{"Mercato Ballarò 海鮮"}, Tips: []string{"四角廣場古城歷史中心"}},
				{ID: "d2-4", Type: models.ItineraryAttraction, Time: "20:00", Name: "入住巴勒莫飯店", Location: "P.za Giulio Cesare, 19, Palermo", Description: "Check-in 休息。"},
			},
		},
		{
			Day: 3, Date: "12/23 (二)", Location: "西西里島 (切法盧)",
			Weather: models.Weather{Temp: "15°C", Condition: "晴朗", Icon: "☀️", RainProb: "10%", UVIndex: "中 (4)"},
			Items: []models.ItineraryItem{
				{ID: "d3-1", Type: models.ItineraryTransport, Time: "09:00", Name: "火車前往切法盧", Location: "Palermo Centrale", Description: "區域火車約 1 小時。"},
				{ID: "d3-2", Type: models.ItineraryAttraction, Time: "10:30", Name: "切法盧全景與巨岩", Location: "Cefalù", Description: "La Rocca 健行，俯瞰老城與海岸線。"},
				{ID: "d3-3", Type: models.ItineraryAttraction, Time: "14:00", Name: "古城漫步與海灘", Location: "Cefalù Old Town", Description: "主教座堂、中世紀洗衣場、冬日海灘散步。"},
				{ID: "d3-4", Type: models.ItineraryRestaurant, Time: "17:00", Name: "切法盧美食", Location: "Cefalù", Description: "品嚐在地美食。", MustEat: []string{"開心果 Gelato", "Pasta e Pasti (CP值高)", "南義傳統三明治", "炸飯糰"}},
				{ID: "d3-5", Type: models.ItineraryTransport, Time: "19:00", Name: "返回巴勒莫", Location: "Cefalù Station", Description: "火車返程。"},
			},
		},
		{
			Day: 4, Date: "12/24 (三)", Location: "西西里島 (巴勒莫)",
			Weather: models.Weather{Temp: "16°C", Condition: "多雲", Icon: "⛅"},
			Items: []models.ItineraryItem{
				{ID: "d4-1", Type: models.ItineraryAttraction, Time: "10:00", Name: "佩萊格里諾山", Location: "Monte Pellegrino", Description: "聖羅薩莉亞朝聖地，巴勒莫灣全景。"},
				{ID: "d4-2", Type: models.ItineraryRestaurant, Time: "17:00", Name: "巴勒莫美食探險", Location: "Palermo", Description: "平安夜街頭小吃。", MustEat: []string{"Arancina 炸飯糰", "Pani ca meusa", "Cannolo"}},
			},
		},
		{
			Day: 5, Date: "12/25 (四)", Location: "西西里 -> 那不勒斯",
			Weather: models.Weather{Temp: "13°C", Condition: "多雲", Icon: "☁️"},
			Items: []models.ItineraryItem{
				{ID: "d5-1", Type: models.ItineraryTransport, Time: "05:30", Name: "前往機場", Location: "Palermo Centrale", Description: "機場巴士約 50 分鐘。"},
				{ID: "d5-2", Type: models.ItineraryTransport, Time: "07:45", Name: "飛往那不勒斯", Location: "PMO Airport", Description: "EasyJet 航班。", TransportCode: "EJU 4102"},
				{ID: "d5-3", Type: models.ItineraryAttraction, Time: "11:00", Name: "那不勒斯 City Walk", Location: "Naples", Description: "Spaccanapoli 老城軸線、平民表決廣場。"},
				{ID: "d5-4", Type: models.ItineraryAttraction, Time: "15:00", Name: "入住那不勒斯飯店", Location: "60 Vico Tre Re a Toledo", Description: "Check-in 休息。"},
				{ID: "d5-5", Type: models.ItineraryRestaurant, Time: "18:00", Name: "那不勒斯美食", Location: "Naples", Description: "耶誕夜晚餐。", MustEat: []string{"Pizza fritta", "Sfogliatella", "Babà"}},
			},
		},
		{
			Day: 6, Date: "12/26 (五)", Location: "龐貝 & 維蘇威火山",
			Weather: models.Weather{Temp: "12°C", Condition: "晴", Icon: "☀️"},
			Items: []models.ItineraryItem{
				{ID: "d6-1", Type: models.ItineraryTransport, Time: "08:00", Name: "前往龐貝", Location: "Toledo -> Garibaldi -> Pompei", Description: "Circumvesuviana 私鐵約 40 分鐘。"},
				{ID: "d6-2", Type: models.ItineraryAttraction, Time: "09:00", Name: "龐貝古城", Location: "Pompeii", Description: "廣場、浴場、悲劇詩人之家。", Tips: []string{"線上預先購票免排隊"}},
				{ID: "d6-3", Type: models.ItineraryAttraction, Time: "13:30", Name: "維蘇威火山", Location: "Vesuvius", Description: "火山口步道，俯瞰那不勒斯灣。"},
				{ID: "d6-4", Type: models.ItineraryTransport, Time: "17:00", Name: "返回那不勒斯", Location: "Pompei -> Naples", Description: "私鐵返程。"},
				{ID: "d6-5", Type: models.ItineraryRestaurant, Time: "19:00", Name: "L'Antica Pizzeria Da Michele", Location: "Naples", Description: "瑪格麗特與 Marinara 兩種經典。", MustEat: []string{"Margherita"}},
			},
		},
		{
			Day: 7, Date: "12/27 (六)", Location: "那不勒斯 -> 巴里 -> 蘑菇村",
			Weather: models.Weather{Temp: "11°C", Condition: "陰", Icon: "☁️"},
			Items: []models.ItineraryItem{
				{ID: "d7-1", Type: models.ItineraryTransport, Time: "07:00", Name: "巴士前往巴里", Location: "Naples Varco Immacolatella", Description: "FlixBus 約 3 小時。"},
				{ID: "d7-2", Type: models.ItineraryAttraction, Time: "12:00", Name: "阿爾貝羅貝洛 (蘑菇村)", Location: "Alberobello", Description: "Trulli 石頂屋群，世界遺產。", MustBuy: []string{"橄欖木餐具", "Trulli 模型"}},
				{ID: "d7-3", Type: models.ItineraryRestaurant, Time: "19:00", Name: "巴里晚餐", Location: "Bari", Description: "耳朵麵 Orecchiette。", MustEat: []string{"Orecchiette alle cime di rapa"}},
				{ID: "d7-4", Type: models.ItineraryAttraction, Time: "21:00", Name: "入住巴里飯店", Location: "Corte S. Pietro Vecchio, Bari", Description: "Check-in 休息。"},
			},
		},
		{
			Day: 8, Date: "12/28 (日)", Location: "巴里 -> 羅馬",
			Weather: models.Weather{Temp: "10°C", Condition: "雨", Icon: "🌧️", RainProb: "70%", OutfitAdvice: "攜帶雨具，防水鞋為佳。"},
			Items: []models.ItineraryItem{
				{ID: "d8-1", Type: models.ItineraryTransport, Time: "08:40", Name: "前往羅馬", Location: "Bari Centrale", Description: "跨區火車約 4 小時。"},
				{ID: "d8-2", Type: models.ItineraryAttraction, Time: "14:00", Name: "入住羅馬飯店", Location: "Via Rimini, 14, Roma", Description: "聖喬瓦尼區。"},
				{ID: "d8-3", Type: models.ItineraryAttraction, Time: "15:30", Name: "羅馬 City Walk", Location: "Rome", Description: "特雷維噴泉、萬神殿、納沃納廣場。"},
				{ID: "d8-4", Type: models.ItineraryRestaurant, Time: "19:00", Name: "羅馬必吃麵包店", Location: "Rome", Description: "Antico Forno Roscioli。", MustEat: []string{"Pizza bianca"}},
			},
		},
		{
			Day: 9, Date: "12/29 (一)", Location: "羅馬",
			Weather: models.Weather{Temp: "11°C", Condition: "晴", Icon: "☀️"},
			Items: []models.ItineraryItem{
				{ID: "d9-1", Type: models.ItineraryRestaurant, Time: "08:00", Name: "噴泉早餐", Location: "Trevi Fountain Area", Description: "清晨人少的特雷維噴泉配可頌。"},
				{ID: "d9-2", Type: models.ItineraryAttraction, Time: "10:00", Name: "梵諦岡聖門與 City Walk", Location: "Vatican & Rome", Description: "聖彼得大教堂、聖天使堡、競技場外圍。", Tips: []string{"聖彼得大教堂早上排隊較短"}},
			},
		},
		{
			Day: 10, Date: "12/30 (二)", Location: "羅馬 -> 威尼斯",
			Weather: models.Weather{Temp: "8°C", Condition: "霧", Icon: "🌫️"},
			Items: []models.ItineraryItem{
				{ID: "d10-1", Type: models.ItineraryRestaurant, Time: "08:00", Name: "早餐: 奶油麵包", Location: "Regoli Pasticceria", Description: "Maritozzo 奶油麵包百年老店。", MustEat: []string{"Maritozzo"}},
				{ID: "d10-2", Type: models.ItineraryTransport, Time: "09:35", Name: "高鐵前往威尼斯", Location: "Roma Termini -> Venice", Description: "Frecciarossa 約 4 小時。"},
				{ID: "d10-3", Type: models.ItineraryAttraction, Time: "14:30", Name: "入住威尼斯飯店", Location: "192 Via Aleardo Aleardi, Mestre", Description: "梅斯特區，進城搭火車 10 分鐘。"},
				{ID: "d10-4", Type: models.ItineraryAttraction, Time: "16:00", Name: "威尼斯 City Walk", Location: "Venice", Description: "里阿爾托橋、聖馬可廣場夜景。"},
			},
		},
		{
			Day: 11, Date: "12/31 (三)", Location: "威尼斯",
			Weather: models.Weather{Temp: "6°C", Condition: "晴", Icon: "☀️", OutfitAdvice: "清晨潟湖濕冷，洋蔥式穿搭。"},
			Items: []models.ItineraryItem{
				{ID: "d11-1", Type: models.ItineraryAttraction, Time: "09:00", Name: "彩虹島 (Burano)", Location: "Burano", Description: "水上巴士前往，彩色漁村與蕾絲工藝。"},
				{ID: "d11-2", Type: models.ItineraryAttraction, Time: "14:00", Name: "本島 City Walk", Location: "Venice Main Island", Description: "嘆息橋、書店 Libreria Acqua Alta。"},
				{ID: "d11-3", Type: models.ItineraryRestaurant, Time: "18:00", Name: "威尼斯必吃", Location: "Venice", Description: "跨年夜晚餐。", MustEat: []string{"墨魚麵", "Cicchetti 配 Spritz"}},
			},
		},
		{
			Day: 12, Date: "1/1 (四)", Location: "威尼斯 -> 米蘭",
			Weather: models.Weather{Temp: "7°C", Condition: "陰", Icon: "☁️"},
			Items: []models.ItineraryItem{
				{ID: "d12-1", Type: models.ItineraryAttraction, Time: "09:00", Name: "威尼斯晨間散步", Location: "Venice", Description: "元旦清晨無人的運河。"},
				{ID: "d12-2", Type: models.ItineraryRestaurant, Time: "12:00", Name: "Trattoria alla Rivetta", Location: "San Marco", Description: "在地人也排隊的海鮮小館。"},
				{ID: "d12-3", Type: models.ItineraryTransport, Time: "15:18", Name: "高鐵前往米蘭", Location: "Venice -> Milan", Description: "Frecciarossa 約 2.5 小時。"},
				{ID: "d12-4", Type: models.ItineraryAttraction, Time: "18:30", Name: "入住米蘭飯店", Location: "Via Carpaccio, 3, Milan", Description: "Check-in 休息。"},
			},
		},
		{
			Day: 13, Date: "1/2 (五)", Location: "米蘭 <-> 盧加諾 (瑞士)",
			Weather: models.Weather{Temp: "4°C", Condition: "雪", Icon: "❄️", OutfitAdvice: "羽絨外套、手套、毛帽。", SunProtection: "雪地反光，建議太陽眼鏡。"},
			Items: []models.ItineraryItem{
				{ID: "d13-1", Type: models.ItineraryAttraction, Time: "09:00", Name: "瑞士盧加諾一日遊", Location: "Lugano", Description: "火車跨境約 1.5 小時，湖畔小鎮與山景。", Tips: []string{"攜帶護照", "瑞郎或刷卡"}},
				{ID: "d13-2", Type: models.ItineraryAttraction, Time: "18:00", Name: "米蘭人骨教堂", Location: "San Bernardino alle Ossa", Description: "返回米蘭後的小眾景點。"},
			},
		},
		{
			Day: 14, Date: "1/3 (六)", Location: "米蘭 -> 上海",
			Weather: models.Weather{Temp: "8°C", Condition: "晴", Icon: "☀️"},
			Items: []models.ItineraryItem{
				{ID: "d14-1", Type: models.ItineraryTransport, Time: "09:00", Name: "抵達機場", Location: "MXP", Description: "Malpensa Express 前往機場。", TransportCode: "CA 836", Terminal: "T1"},
			},
		},
		{
			Day: 15, Date: "1/4 (日)", Location: "上海 -> 台灣",
			Weather: models.Weather{Temp: "20°C", Condition: "晴", Icon: "🏠"},
			Items: []models.ItineraryItem{
				{ID: "d15-1", Type: models.ItineraryTransport, Time: "06:00", Name: "抵達浦東", Location: "PVG", Description: "轉機等待。"},
				{ID: "d15-2", Type: models.ItineraryTransport, Time: "12:05", Name: "飛往台灣", Location: "PVG -> TPE", Description: "回家。", TransportCode: "CI 502", Terminal: "T2"},
			},
		},
	},
}

// seedFlights lists every booked long-distance leg, boarding-pass style.
var seedFlights = []models.Flight{
	{Date: "12/21", Origin: "TPE", Dest: "PVG", Airline: "China Eastern", Code: "MU 5006", Time: "18:40", Terminal: "T2", Baggage: "隨身 10kg, 托運 23kg"},
	{Date: "12/22", Origin: "PVG", Dest: "MXP", Airline: "China Eastern", Code: "MU 243", Time: "01:20", Terminal: "T1", Baggage: "隨身 10kg, 托運 23kg"},
	{Date: "12/22", Origin: "MXP", Dest: "PMO", Airline: "Ryanair", Time: "13:05", Terminal: "T1", Baggage: "隨身 40x20x25"},
	{Date: "12/25", Origin: "PMO", Dest: "NAP", Airline: "EasyJet", Code: "EJU 4102", Time: "07:45", Baggage: "隨身 45x36x20"},
	{Date: "12/28", Origin: "BRI", Dest: "ROM", Airline: "Train", Time: "08:40", Terminal: "Stazione", Baggage: "無限制"},
	{Date: "12/30", Origin: "ROM", Dest: "VCE", Airline: "Frecciarossa", Time: "09:35", Terminal: "Termini", Baggage: "無限制"},
	{Date: "1/1", Origin: "VCE", Dest: "MXP", Airline: "Frecciarossa", Time: "15:18", Terminal: "S.Lucia", Baggage: "無限制"},
	{Date: "1/3", Origin: "MXP", Dest: "PVG", Airline: "Air China", Code: "CA 836", Time: "12:10", Terminal: "T1", Baggage: "隨身 5kg, 托運 23kg"},
	{Date: "1/4", Origin: "PVG", Dest: "TPE", Airline: "China Airlines", Code: "CI 502", Time: "12:05", Terminal: "T2", Baggage: "隨身 7kg, 托運 23kg"},
}

var seedAccommodations = []models.Accommodation{
	{Name: "Palermo Hotel", Address: "P.za Giulio Cesare, 19, Palermo", Dates: "12/22 - 12/25", Area: "西西里島"},
	{Name: "Napoli Hotel", Address: "60 Vico Tre Re a Toledo, Naples", Dates: "12/25 - 12/27", Area: "那不勒斯"},
	{Name: "Bari Hotel", Address: "Corte S. Pietro Vecchio, Bari", Dates: "12/27 - 12/28", Area: "普利亞"},
	{Name: "Roma Hotel", Address: "Via Rimini, 14, Rome", Dates: "12/28 - 12/30", Area: "聖喬瓦尼區"},
	{Name: "Venice Hotel", Address: "192 Via Aleardo Aleardi, Mestre", Dates: "12/30 - 1/1", Area: "梅斯特"},
	{Name: "Milan Hotel", Address: "Via Carpaccio, 3, Milan", Dates: "1/1 - 1/3", Area: "米蘭"},
}

var seedContacts = []models.EmergencyContact{
	{Name: "歐盟通用 (警察/救護)", Number: "112"},
	{Name: "駐義代表處 急難救助", Number: "+39 338 141 8946"},
}

var seedPhrases = []models.PhraseCategory{
	{ID: "GREETING", Label: "問候", Phrases: []models.Phrase{
		{Italian: "Ciao", Chinese: "你好 / 再見", Pronunciation: "喬"},
		{Italian: "Buongiorno", Chinese: "早安", Pronunciation: "邦-久-諾"},
		{Italian: "Buonasera", Chinese: "晚上好", Pronunciation: "邦-納-塞-拉"},
		{Italian: "Grazie", Chinese: "謝謝", Pronunciation: "葛拉-齊耶"},
	}},
	{ID: "DINING", Label: "點餐", Phrases: []models.Phrase{
		{Italian: "Il conto, per favore", Chinese: "請給我帳單", Pronunciation: "以-孔-托, 佩-爾-法-沃-雷"},
		{Italian: "Un caffè, per favore", Chinese: "一杯咖啡，謝謝", Pronunciation: "溫-卡-費"},
		{Italian: "È delizioso!", Chinese: "太好吃了！", Pronunciation: "欸-德-利-齊-歐-索"},
	}},
	{ID: "SHOPPING", Label: "購物", Phrases: []models.Phrase{
		{Italian: "Quanto costa?", Chinese: "這多少錢？", Pronunciation: "寬-托-寇-斯-塔"},
		{Italian: "Posso pagare con carta?", Chinese: "可以刷卡嗎？", Pronunciation: "頗-索-帕-嘎-雷-孔-卡-爾-塔"},
	}},
	{ID: "TRANSPORT", Label: "交通", Phrases: []models.Phrase{
		{Italian: "Dov'è la stazione?", Chinese: "車站在哪裡？", Pronunciation: "多-韋-拉-斯-塔-齊-歐-內"},
		{Italian: "Un biglietto per Roma", Chinese: "一張去羅馬的票", Pronunciation: "溫-比-列-托-佩-爾-羅-馬"},
	}},
	{ID: "SOS", Label: "求助", Phrases: []models.Phrase{
		{Italian: "Aiuto!", Chinese: "救命！", Pronunciation: "阿-尤-托"},
		{Italian: "Parla inglese?", Chinese: "你會說英文嗎？", Pronunciation: "帕-爾-拉-英-格-雷-塞"},
	}},
}
