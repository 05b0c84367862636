package assistant

// Canned reply copy. These strings are product content shared with the
// portfolio frontend and are rendered as-is, independent of data-load
// state.

const welcomeTemplate = `Hi! 👋 I'm Saravjit's AI assistant.

I can answer questions like:
• Is Saravjit good for software development roles?
• What are his key strengths?
• Tell me about his experience
• How can I contact him?

Feel free to ask me anything about Saravjit!`

const fitSoftwareTemplate = `✅ **Absolutely!** Saravjit is an excellent fit for software development roles. Here's why:

🎓 **Strong Academic Background**: M.S. in Computer Science from Northeastern University with a perfect 4.0 GPA

💼 **Proven Experience**: 3+ years of professional software engineering experience at companies like Q3 Technologies, Altudo, and Nvidia

🛠️ **Versatile Tech Stack**: Proficient in React, .NET Core, TypeScript, Java, C++, and modern frameworks

🚀 **Real Impact**: Led projects that improved performance by 25-30%, reduced defects by 20%, and delivered solutions for 50,000+ users

📚 **Teaching Experience**: Currently a TA at Northeastern, showing deep technical understanding and communication skills

He's definitely a strong candidate for any software development role!`

const fitFullStackTemplate = `✅ **Definitely!** Saravjit is particularly strong in full-stack development:

🎯 **Frontend Expertise**: React, Next.js, TypeScript, HTML5, CSS3, responsive design

🎯 **Backend Skills**: .NET Core, C#, Node.js, Java, REST APIs, GraphQL

🎯 **Databases**: MySQL, MongoDB, SQL Server - experienced with data modeling

🎯 **DevOps**: Docker, Git, CI/CD pipelines, SonarQube integration

🎯 **Real Projects**: Built railway booking systems, campus recruitment platforms, and enterprise CMS solutions

His experience spans the entire development stack!`

const fitFrontendTemplate = `✅ **Yes!** Saravjit has strong React/Frontend expertise:

⚛️ Extensive experience with React, Next.js, and modern frontend frameworks
🎨 Built responsive, accessible UIs following WCAG standards
⚡ Improved frontend load times by 30% through optimization
🔧 Experience with TypeScript, GraphQL, and state management
📱 Built production applications serving 50,000+ users

He's well-equipped for React and frontend development roles!`

const fitBackendTemplate = `✅ **Absolutely!** Saravjit has solid backend development skills:

🔧 Proficient in .NET Core, C#, and building scalable APIs
📊 Experience with MySQL, SQL Server, and MongoDB
🏗️ Built REST APIs and microservices architectures
⚡ Integrated CI/CD pipelines and quality automation
🚂 Developed backend systems for railway operators and enterprise clients

He's a strong backend developer!`

const strengthsTemplate = `🌟 **Saravjit's Key Strengths:**

💻 **Full-Stack Development**: Expert in React, .NET, and modern web technologies

📈 **Performance Optimization**: Proven track record of improving load times by 25-30% and reducing defects

🎯 **Problem Solving**: Built complex systems like railway booking platforms and search engines

🔄 **Agile Development**: Experience with CI/CD, Docker, Git, and modern DevOps practices

👥 **Collaboration**: Worked with cross-functional teams and currently mentoring 500+ students

🎓 **Continuous Learning**: Perfect 4.0 GPA in M.S. program while gaining cutting-edge knowledge`

const workStyleTemplate = `💡 **Saravjit's Work Approach:**

He follows a systematic approach:

1️⃣ **Understand**: Deeply analyzes requirements and user needs
2️⃣ **Design**: Follows SOLID principles and clean architecture
3️⃣ **Build**: Uses modern frameworks and best practices
4️⃣ **Test**: Implements automated testing and quality gates
5️⃣ **Optimize**: Focuses on performance and user experience
6️⃣ **Collaborate**: Works well in Agile teams with QA and PMs

His projects show measurable improvements: 30% faster load times, 20% fewer defects, 100% on-time delivery!`

const leadershipTemplate = `👥 **Team Collaboration & Leadership:**

Saravjit is an excellent team player:

🎓 **Mentorship**: Currently teaching 500+ students as a Graduate TA
🤝 **Collaboration**: Worked with QA, PMs, and cross-functional teams in Agile environments
🚀 **Initiative**: Led development of multiple client projects with 100% on-time delivery
📚 **Knowledge Sharing**: Helps debug, review code, and guide junior developers
💬 **Communication**: Strong technical communication skills, proven by teaching role

He's both a strong individual contributor and team player!`

const hiringTemplate = `⭐ **Strong Recommendation!**

Here's why you should consider Saravjit:

✅ **Proven Track Record**: 3+ years delivering production software for enterprise clients
✅ **Technical Excellence**: Perfect 4.0 GPA + expertise in modern tech stack
✅ **Real Impact**: Improved system performance 25-30%, reduced defects 20%
✅ **Scalable Solutions**: Built systems serving 50,000+ users daily
✅ **Fast Learner**: Successfully worked with diverse technologies: React, .NET, C++, CUDA
✅ **Reliable**: 100% on-time project delivery record

He brings both technical depth and practical experience to make immediate impact!`

const comparisonTemplate = `🏆 **What Makes Saravjit Stand Out:**

🎯 **Unique Combination**: Both M.S. Computer Science student (4.0 GPA) and 3+ years industry experience

⚡ **Measurable Impact**: Not just coding - delivering 25-30% performance improvements and 20% defect reduction

🔧 **Full-Stack Mastery**: Comfortable with React, .NET, Java, C++ - can work anywhere in the stack

🎓 **Teaching Ability**: If he can explain complex concepts to 500+ students, he can explain to any stakeholder

🌍 **Enterprise Experience**: Worked on real production systems at Q3, Altudo, and Nvidia

🚀 **Modern Practices**: Docker, CI/CD, SonarQube, automated testing - not just legacy code`

const skillsFallbackTemplate = `Saravjit has expertise in full-stack development with React, .NET, JavaScript, TypeScript, and modern frameworks.`

const projectsFallbackTemplate = `Saravjit has worked on various projects including Railway systems, Campus Recruitment Platform, and C++ Search Engine. Check out the Projects section for more details!`

const aboutFallbackTemplate = `Saravjit Singh is a Software Engineer and M.S. Computer Science student at Northeastern University. He specializes in full-stack development with React, .NET, and modern web technologies.`

const resumeTemplate = `You can view Saravjit's resume here:
https://drive.google.com/file/d/1O8kEi5z9VthoYCSsatp8R6bEO6oa3f6S/view?usp=sharing

It contains detailed information about his experience, skills, and achievements.`

const locationTemplate = `Saravjit is currently based in Boston, USA, pursuing his Master's degree at Northeastern University.`

const availabilityTemplate = `✅ **Yes, Saravjit is actively seeking opportunities!**

He's open to:
🎯 Full-time Software Engineering roles
🎯 Full-Stack Development positions
🎯 Frontend/Backend specialized roles
🎯 Positions starting Summer/Fall 2025

📍 **Location**: Currently in Boston, open to relocation
💼 **Work Authorization**: Please inquire directly

📧 Feel free to reach out via LinkedIn or email to discuss opportunities!`

const compensationTemplate = `💰 **Compensation Discussion:**

Saravjit is open to discussing compensation based on:

📊 Market rates for his experience level
🎯 The specific role and responsibilities
🏢 Company size and location
📈 Total compensation package

For specific salary discussions, please connect directly via LinkedIn or email. He's flexible and focused on finding the right fit!`

const motivationTemplate = `💭 **Why Software Engineering?**

Saravjit is passionate about software development because:

🎯 **Problem Solving**: Loves tackling complex technical challenges
🚀 **Real Impact**: His work serves thousands of users daily
💡 **Innovation**: Enjoys working with cutting-edge technologies
📚 **Continuous Learning**: The field constantly evolves and challenges him
🤝 **Collaboration**: Enjoys working with talented teams to build great products

His perfect 4.0 GPA and 3+ years of experience show his dedication to the craft!`

const timelineTemplate = `📅 **Timeline:**

Saravjit is pursuing his M.S. in Computer Science at Northeastern University:

🎓 **Graduation**: May 2027
💼 **Availability**: Open to full-time roles starting Summer/Fall 2025
⏰ **Internships**: Also open to summer internship opportunities
🚀 **Current**: Available for part-time/contract work while studying

He's flexible and can discuss specific timelines based on the opportunity!`

const familiarityWebTemplate = `⚛️ **React/Node.js Experience:**

Yes! Saravjit has extensive experience:

✅ React 17+ with Hooks and functional components
✅ Next.js for server-side rendering and static sites
✅ Node.js for backend services
✅ TypeScript for type-safe code
✅ Redux/Context API for state management
✅ GraphQL and REST APIs

He's built multiple production React applications serving thousands of users!`

const familiarityCloudTemplate = `☁️ **Cloud/DevOps Skills:**

Saravjit has experience with:

✅ Docker for containerization
✅ CI/CD pipelines (integrated SonarQube, automated testing)
✅ Git/Bitbucket for version control
✅ Linux environments

While he's more focused on application development, he's comfortable with modern DevOps practices and cloud deployment workflows!`

const greetingTemplate = `👋 Hello! I'm Saravjit's AI assistant. I can tell you all about his:

💼 Professional experience and achievements
🛠️ Technical skills and expertise
🎓 Education and academic background
🚀 Projects and real-world impact
📧 How to connect with him

What would you like to know? Feel free to ask conversational questions like "Is Saravjit good for software development roles?" or "What makes him stand out?"`

const thanksTemplate = `😊 You're welcome! Feel free to ask any other questions about Saravjit's experience, skills, or how to connect with him.

If you're interested in working with him, don't hesitate to reach out via LinkedIn or email!`

const defaultTemplate = `I can help you learn about Saravjit's:

• 💼 Work Experience & Achievements
• 🛠️ Technical Skills & Expertise
• 🎓 Education & Background
• 🚀 Projects & Impact
• 📧 Contact Information

💡 **Try asking:**
- Is Saravjit good for software development?
- What are his key strengths?
- How does he approach problem-solving?
- Should I hire him?

What would you like to know?`
