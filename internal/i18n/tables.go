package i18n

var zhTable = [keyCount]string{
	KeyTagline:                 "局域网入口",
	KeySectionSignal:           "信号监控",
	KeySectionLAN:              "LAN 导航 / Favorites",
	KeySectionAlerts:           "异常服务 / Alerts",
	KeySectionTable:            "全部服务矩阵",
	KeyCardInternetTitle:       "网络健康",
	KeyCardWeatherTitle:        "天气",
	KeyWeatherSourceHint:       "Open‑Meteo · 自动刷新",
	KeyWeatherConditionUnknown: "未知天气",
	KeyWeatherDayLabel:         "白天",
	KeyWeatherNightLabel:       "夜间",
	KeyWeatherPrecipLabel:      "降水概率",
	KeyHourlyUnavailable:       "暂无小时级预报",
	KeyUpstreamProbe:           "正在探测上游服务…",
	KeyUpstreamNone:            "未配置上游服务",
	KeyKVType:                  "类型",
	KeyKVEndpoint:              "Endpoint",
	KeyKVHost:                  "Host",
	KeyKVImportance:            "优先级",
	KeyImportanceCore:          "核心",
	KeyImportanceNormal:        "普通",
	KeyLinkOpen:                "打开 ↗",
	KeyLinkNoUI:                "无界面",
	KeyInternetStateLabel:      "状态",
	KeyInternetTargetsLabel:    "监测目标",
	KeyInternetUpdatedLabel:    "更新时间",
	KeyInternetUnknown:         "网络未知",
	KeyInternetOnline:          "Internet 在线",
	KeyInternetOffline:         "Internet 离线",
	KeyAvgRTT:                  "平均延迟",
	KeyTargetsReachable:        "可达",
	KeyAlertsEmpty:             "当前没有异常服务 · All green ✅",
	KeyLoading:                 "加载中…",
	KeyTableName:               "名称",
	KeyTableCategory:           "类别",
	KeyTableType:               "类型",
	KeyTableStatus:             "状态",
	KeyTableMetric:             "延迟 / 状态码",
	KeyTableLastChange:         "最近变更",
	KeyToggleTable:             "折叠 / 展开",
	KeyStatusUp:                "正常",
	KeyStatusDown:              "故障",
	KeyStatusUnknown:           "未知",
	KeyWeatherUnavailable:      "天气数据不可用",
	KeyWeatherFetchFailed:      "天气获取失败（可能离线）",
	KeyWeatherDisabled:         "配置中禁用天气",
	KeyWeatherWindLabel:        "风速",
	KeyWeatherCodeLabel:        "天气码",
	KeyAuroraUnavailable:       "极光状态未知",
	KeyAuroraDisabled:          "极光检测未启用",
	KeyAuroraError:             "极光数据不可用",
	KeyAuroraActive:            "可能出现极光",
	KeyAuroraInactive:          "暂无极光迹象",
	KeyAuroraProbabilityLabel:  "概率",
	KeyThemeLabelDay:           "日间模式",
	KeyThemeLabelNight:         "夜间模式",
	KeyLangLabelZH:             "English",
	KeyLangLabelEN:             "中文",
	KeyAlertsLabelType:         "类型",
	KeyAlertsLabelCategory:     "类别",
	KeyAlertsLabelMetric:       "指标",
	KeyAlertsLabelLastChange:   "变更时间",
	KeyTimeJustNow:             "刚刚",
	KeyTimeMinAgo:              "%d 分钟前",
	KeyTimeHourAgo:             "%d 小时前",
	KeyTimeDayAgo:              "%d 天前",
	KeyTimeOn:                  "于 %s",
	KeyHelpLanguage:            "切换语言",
	KeyHelpTheme:               "切换主题",
	KeyHelpTable:               "折叠矩阵",
	KeyHelpRefresh:             "立即刷新",
	KeyHelpScroll:              "滚动",
	KeyHelpQuit:                "退出",
}

var enTable = [keyCount]string{
	KeyTagline:                 "LAN entry",
	KeySectionSignal:           "Signal Monitor",
	KeySectionLAN:              "LAN Deck / Favorites",
	KeySectionAlerts:           "Alerts",
	KeySectionTable:            "All Services Matrix",
	KeyCardInternetTitle:       "Internet Health",
	KeyCardWeatherTitle:        "Weather",
	KeyWeatherSourceHint:       "Open-Meteo · auto refresh",
	KeyWeatherConditionUnknown: "Unknown weather",
	KeyWeatherDayLabel:         "Daytime",
	KeyWeatherNightLabel:       "Nighttime",
	KeyWeatherPrecipLabel:      "Precip",
	KeyHourlyUnavailable:       "Hourly forecast unavailable",
	KeyUpstreamProbe:           "Probing upstream services…",
	KeyUpstreamNone:            "No upstream services configured",
	KeyKVType:                  "Type",
	KeyKVEndpoint:              "Endpoint",
	KeyKVHost:                  "Host",
	KeyKVImportance:            "Importance",
	KeyImportanceCore:          "Core",
	KeyImportanceNormal:        "Normal",
	KeyLinkOpen:                "Open ↗",
	KeyLinkNoUI:                "No UI",
	KeyInternetStateLabel:      "State",
	KeyInternetTargetsLabel:    "Targets",
	KeyInternetUpdatedLabel:    "Updated",
	KeyInternetUnknown:         "Internet unknown",
	KeyInternetOnline:          "Internet online",
	KeyInternetOffline:         "Internet offline",
	KeyAvgRTT:                  "Avg RTT",
	KeyTargetsReachable:        "reachable",
	KeyAlertsEmpty:             "No alerts · All green ✅",
	KeyLoading:                 "Loading…",
	KeyTableName:               "Name",
	KeyTableCategory:           "Category",
	KeyTableType:               "Type",
	KeyTableStatus:             "Status",
	KeyTableMetric:             "Latency / Code",
	KeyTableLastChange:         "Last Change",
	KeyToggleTable:             "Toggle",
	KeyStatusUp:                "Up",
	KeyStatusDown:              "Down",
	KeyStatusUnknown:           "Unknown",
	KeyWeatherUnavailable:      "Weather unavailable",
	KeyWeatherFetchFailed:      "Weather fetch failed (maybe offline)",
	KeyWeatherDisabled:         "Weather disabled in config",
	KeyWeatherWindLabel:        "Wind",
	KeyWeatherCodeLabel:        "Code",
	KeyAuroraUnavailable:       "Aurora status unknown",
	KeyAuroraDisabled:          "Aurora check disabled",
	KeyAuroraError:             "Aurora data unavailable",
	KeyAuroraActive:            "Aurora likely",
	KeyAuroraInactive:          "No aurora expected",
	KeyAuroraProbabilityLabel:  "Probability",
	KeyThemeLabelDay:           "Day Mode",
	KeyThemeLabelNight:         "Night Mode",
	KeyLangLabelZH:             "English",
	KeyLangLabelEN:             "中文",
	KeyAlertsLabelType:         "Type",
	KeyAlertsLabelCategory:     "Category",
	KeyAlertsLabelMetric:       "Metric",
	KeyAlertsLabelLastChange:   "Last change",
	KeyTimeJustNow:             "just now",
	KeyTimeMinAgo:              "%d min ago",
	KeyTimeHourAgo:             "%d h ago",
	KeyTimeDayAgo:              "%d d ago",
	KeyTimeOn:                  "on %s",
	KeyHelpLanguage:            "language",
	KeyHelpTheme:               "theme",
	KeyHelpTable:               "collapse matrix",
	KeyHelpRefresh:             "refresh",
	KeyHelpScroll:              "scroll",
	KeyHelpQuit:                "quit",
}
