package nav

// Default returns the site's navbar. A fresh tree is built on every call.
func Default() Entries {
	return Entries{
		Group{
			Text:   "Golang指南",
			Prefix: "/golang/",
			Icon:   "grommet-icons:golang",
			Children: Entries{
				Group{
					Text: "语法核心",
					Icon: "ri:coreos-fill",
					Children: Entries{
						Link{Text: "核心基础", Link: "core/", Icon: "solar:crown-star-bold"},
						Link{Text: "进阶特性", Link: "advanced/", Icon: "ic:outline-sync-lock"},
						Link{Text: "工程化", Link: "engineering/", Icon: "carbon:build-tool"},
						Link{Text: "分布式", Link: "distributed/", Icon: "zondicons:network"},
					},
				},
				Group{
					Text: "Web开发",
					Icon: "mdi:web",
					Children: Entries{
						Link{Text: "Gin框架", Link: "web/gin/", Icon: "simple-icons:lightning"},
						Link{Text: "GORM", Link: "web/gorm/", Icon: "mdi:database"},
					},
				},
				Group{
					Text: "社区生态",
					Icon: "raphael:opensource",
					Children: Entries{
						Link{Text: "标准库", Link: "stdlib/", Icon: "majesticons:library"},
					},
				},
			},
		},
		Group{
			Text: "云原生",
			Icon: "carbon:cloud-services",
			Children: Entries{
				Group{
					Text:   "数据库",
					Prefix: "/tutorials/database/",
					Children: Entries{
						Link{Text: "MySQL", Link: "mysql/", Icon: "tabler:brand-mysql"},
						Link{Text: "Redis", Link: "redis/", Icon: "cib:redis"},
					},
				},
				Group{
					Text:   "消息队列",
					Prefix: "/tutorials/mq/",
					Children: Entries{
						Link{Text: "Kafka", Link: "kafka/", Icon: "logos:kafka-icon"},
						Link{Text: "RabbitMQ", Link: "rabbitmq/", Icon: "simple-icons:rabbitmq"},
						Link{Text: "RocketMQ", Link: "rocketmq/", Icon: "simple-icons:apacherocketmq"},
					},
				},
				Group{
					Text:   "系统与容器",
					Prefix: "/tutorials/cloud/",
					Children: Entries{
						Link{Text: "Docker", Link: "docker/", Icon: "mdi:docker"},
						Link{Text: "Kubernetes", Link: "kubernetes/", Icon: "mdi:kubernetes"},
						Link{Text: "Linux", Link: "linux/", Icon: "mingcute:linux-fill"},
					},
				},
			},
		},
		Group{
			Text:   "面试宝典",
			Icon:   "icon-park-solid:tips",
			Prefix: "/interview/",
			Children: Entries{
				Link{Text: "Golang", Link: "golang", Icon: "logos:go"},
				Link{Text: "MySQL", Link: "mysql", Icon: "simple-icons:mysql"},
				Link{Text: "Redis", Link: "redis", Icon: "cib:redis"},
				Link{Text: "RocketMQ", Link: "rocketmq", Icon: "simple-icons:apacherocketmq"},
				Link{Text: "Kubernetes", Link: "k8s", Icon: "mdi:kubernetes"},
			},
		},
		Link{Text: "项目实战", Icon: "ant-design:project-filled", Link: "/project/"},
	}
}
